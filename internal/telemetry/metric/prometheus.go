package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jsettings"

// Load results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Registry holds all application metrics on a private Prometheus registry.
type Registry struct {
	reg *prometheus.Registry

	LoadsTotal   *prometheus.CounterVec
	ReportsTotal *prometheus.CounterVec
	LastLoad     prometheus.Gauge
	SettingsKeys prometheus.Gauge

	now func() time.Time
}

// NewRegistry creates and registers all metrics.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		LoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Settings loads by result",
		}, []string{"result"}),
		ReportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Diagnostic messages emitted by level",
		}, []string{"level"}),
		LastLoad: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_load_timestamp_seconds",
			Help:      "Unix timestamp of the last successful settings load",
		}),
		SettingsKeys: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "settings_keys",
			Help:      "Number of projected settings keys after the last load",
		}),
		now: time.Now,
	}

	r.reg.MustRegister(r.LoadsTotal, r.ReportsTotal, r.LastLoad, r.SettingsKeys)
	return r
}

// ObserveLoad records the outcome of one LoadSettings call.
// keys is only used on success.
func (r *Registry) ObserveLoad(err error, keys int) {
	if err != nil {
		r.LoadsTotal.WithLabelValues(ResultFailure).Inc()
		return
	}
	r.LoadsTotal.WithLabelValues(ResultSuccess).Inc()
	r.LastLoad.Set(float64(r.now().Unix()))
	r.SettingsKeys.Set(float64(keys))
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
