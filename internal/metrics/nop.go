// Package metrics provides internal metrics utilities for FunkyDapper.
package metrics

import "github.com/rahicks26/FunkyDapper/types"

// NopMetrics is a no-op collector that discards all metrics.
//
// This is used as the default collector when no metrics implementation is
// configured, avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// IncExecTotal discards the observation.
func (m *NopMetrics) IncExecTotal() {}

// IncExecError discards the observation.
func (m *NopMetrics) IncExecError() {}

// ObserveExecDuration discards the observation.
func (m *NopMetrics) ObserveExecDuration(_ float64) {}

// IncQueryTotal discards the observation.
func (m *NopMetrics) IncQueryTotal() {}

// IncQueryError discards the observation.
func (m *NopMetrics) IncQueryError() {}

// ObserveQueryDuration discards the observation.
func (m *NopMetrics) ObserveQueryDuration(_ float64) {}

// IncMultiQueryTotal discards the observation.
func (m *NopMetrics) IncMultiQueryTotal() {}

// IncMultiQueryError discards the observation.
func (m *NopMetrics) IncMultiQueryError() {}

// ObserveMultiQueryDuration discards the observation.
func (m *NopMetrics) ObserveMultiQueryDuration(_ float64) {}

// IncResultSetsDecoded discards the observation.
func (m *NopMetrics) IncResultSetsDecoded(_ int) {}
