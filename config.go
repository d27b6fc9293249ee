package funkydapper

import (
	"github.com/rahicks26/FunkyDapper/internal/logging"
	"github.com/rahicks26/FunkyDapper/internal/metrics"
	"github.com/rahicks26/FunkyDapper/types"
)

// ClientConfig holds configuration for FunkyDapper clients.
type ClientConfig struct {
	Logger  types.Logger
	Metrics types.MetricsCollector
}

// DefaultConfig returns a ClientConfig with sensible defaults.
//
// Defaults:
//   - Logger: no-op logger (use WithLogger for structured logging)
//   - Metrics: no-op collector (use WithMetrics, e.g. contrib/metrics/vm)
//
// Returns:
//   - *ClientConfig: Configuration with default settings
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Logger:  logging.NewNopLogger(),
		Metrics: metrics.NewNopMetrics(),
	}
}

// Option configures a ClientConfig.
type Option func(*ClientConfig)

// WithLogger sets the structured logger.
//
// If not set, a no-op logger is used that discards all messages.
// The logger interface is compatible with zap.SugaredLogger and
// slog-style key/value logging.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(c *ClientConfig) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics collector.
//
// If not set, a no-op collector is used that discards all metrics.
// Use contrib/metrics/vm.New() for VictoriaMetrics integration.
//
// Parameters:
//   - collector: The metrics collector implementation
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(c *ClientConfig) {
		c.Metrics = collector
	}
}
