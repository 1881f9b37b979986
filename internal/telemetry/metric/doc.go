// Package metric provides Prometheus metrics for jsettings.
//
//   - prometheus.go: Registry, load observation and the /metrics handler
//   - sink.go: Diagnostic sink decorator counting messages by level
//
// Metrics:
//
//   - jsettings_loads_total{result}
//   - jsettings_reports_total{level}
//   - jsettings_last_load_timestamp_seconds
//   - jsettings_settings_keys
package metric
