// Package vm provides a VictoriaMetrics-based implementation of
// types.MetricsCollector.
//
// All metrics are pre-created at initialization time and exposed in
// Prometheus text format via Handler or WritePrometheus.
package vm
