package metric

import "github.com/yndnr/jsettings-go/pkg/jsettings"

// CountingSink counts every message by level and forwards it to next.
func (r *Registry) CountingSink(next jsettings.Sink) jsettings.Sink {
	return jsettings.SinkFunc(func(level jsettings.Level, message string) {
		r.ReportsTotal.WithLabelValues(level.String()).Inc()
		next.Emit(level, message)
	})
}
