package vm

import (
	"fmt"
	"io"
	"net/http"

	"github.com/VictoriaMetrics/metrics"

	"github.com/rahicks26/FunkyDapper/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "funkydapper"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector will register metrics with this set instead of
// creating a new one. The caller is responsible for exposing this set
// (e.g., via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// All metrics are pre-created at initialization time for optimal
// performance. Thread-safe for concurrent use.
type Collector struct {
	set    *metrics.Set
	prefix string

	execTotal    *metrics.Counter
	execErrors   *metrics.Counter
	execDuration *metrics.Histogram

	queryTotal    *metrics.Counter
	queryErrors   *metrics.Counter
	queryDuration *metrics.Histogram

	multiTotal    *metrics.Counter
	multiErrors   *metrics.Counter
	multiDuration *metrics.Histogram

	resultSets *metrics.Counter
}

// Compile-time assertion.
var _ types.MetricsCollector = (*Collector)(nil)

// New creates a new VictoriaMetrics-based metrics collector.
//
// The collector creates its own metrics.Set and registers it globally
// unless one is supplied via WithMetricsSet.
//
// Parameters:
//   - opts: Configuration options (e.g., WithPrefix)
//
// Returns:
//   - *Collector: A new metrics collector ready for use
//
// Example:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	client, _ := funkydapper.NewClient(db,
//	    funkydapper.WithMetrics(collector),
//	)
func New(opts ...Option) *Collector {
	c := &Collector{
		prefix: "funkydapper",
	}

	for _, opt := range opts {
		opt(c)
	}

	// If no set is provided, create a new one and register it globally.
	// If a set is provided, we assume the caller manages it.
	if c.set == nil {
		c.set = metrics.NewSet()
		metrics.RegisterSet(c.set)
	}

	c.initMetrics()

	return c
}

// initMetrics pre-creates all metrics with the configured prefix.
func (c *Collector) initMetrics() {
	p := c.prefix

	c.execTotal = c.set.NewCounter(fmt.Sprintf(`%s_exec_total`, p))
	c.execErrors = c.set.NewCounter(fmt.Sprintf(`%s_exec_errors_total`, p))
	c.execDuration = c.set.NewHistogram(fmt.Sprintf(`%s_exec_duration_seconds`, p))

	c.queryTotal = c.set.NewCounter(fmt.Sprintf(`%s_query_total`, p))
	c.queryErrors = c.set.NewCounter(fmt.Sprintf(`%s_query_errors_total`, p))
	c.queryDuration = c.set.NewHistogram(fmt.Sprintf(`%s_query_duration_seconds`, p))

	c.multiTotal = c.set.NewCounter(fmt.Sprintf(`%s_multi_query_total`, p))
	c.multiErrors = c.set.NewCounter(fmt.Sprintf(`%s_multi_query_errors_total`, p))
	c.multiDuration = c.set.NewHistogram(fmt.Sprintf(`%s_multi_query_duration_seconds`, p))

	c.resultSets = c.set.NewCounter(fmt.Sprintf(`%s_result_sets_decoded_total`, p))
}

// Set returns the underlying metrics set.
func (c *Collector) Set() *metrics.Set {
	return c.set
}

// Handler returns metrics in Prometheus format over HTTP.
//
// Example:
//
//	http.HandleFunc("/metrics", collector.Handler)
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

// WritePrometheus writes all metrics in Prometheus format to the given writer.
//
// Parameters:
//   - w: The writer to write metrics to
func (c *Collector) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// IncExecTotal increments the total execute operations counter.
func (c *Collector) IncExecTotal() {
	c.execTotal.Inc()
}

// IncExecError increments the execute error counter.
func (c *Collector) IncExecError() {
	c.execErrors.Inc()
}

// ObserveExecDuration records an execute operation duration in seconds.
func (c *Collector) ObserveExecDuration(seconds float64) {
	c.execDuration.Update(seconds)
}

// IncQueryTotal increments the total query operations counter.
func (c *Collector) IncQueryTotal() {
	c.queryTotal.Inc()
}

// IncQueryError increments the query error counter.
func (c *Collector) IncQueryError() {
	c.queryErrors.Inc()
}

// ObserveQueryDuration records a query operation duration in seconds.
func (c *Collector) ObserveQueryDuration(seconds float64) {
	c.queryDuration.Update(seconds)
}

// IncMultiQueryTotal increments the total multi-result query counter.
func (c *Collector) IncMultiQueryTotal() {
	c.multiTotal.Inc()
}

// IncMultiQueryError increments the multi-result query error counter.
func (c *Collector) IncMultiQueryError() {
	c.multiErrors.Inc()
}

// ObserveMultiQueryDuration records a multi-result query duration in seconds.
func (c *Collector) ObserveMultiQueryDuration(seconds float64) {
	c.multiDuration.Update(seconds)
}

// IncResultSetsDecoded adds count to the decoded result set counter.
func (c *Collector) IncResultSetsDecoded(count int) {
	if count > 0 {
		c.resultSets.Add(count)
	}
}
