package types

// MetricsCollector defines methods for collecting operational metrics.
//
// Implementations should be thread-safe as methods may be called
// concurrently.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	client, _ := funkydapper.NewClient(db,
//	    funkydapper.WithMetrics(collector),
//	)
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// ----------------------
	// Execute (non-query commands)
	// ----------------------

	// IncExecTotal increments the total execute operations counter.
	IncExecTotal()

	// IncExecError increments the execute error counter.
	IncExecError()

	// ObserveExecDuration records an execute operation duration in seconds.
	ObserveExecDuration(seconds float64)

	// ----------------------
	// Query (single result set)
	// ----------------------

	// IncQueryTotal increments the total query operations counter.
	IncQueryTotal()

	// IncQueryError increments the query error counter.
	IncQueryError()

	// ObserveQueryDuration records a query operation duration in seconds.
	ObserveQueryDuration(seconds float64)

	// ----------------------
	// QueryMultiple (multi result set)
	// ----------------------

	// IncMultiQueryTotal increments the total multi-result query counter.
	IncMultiQueryTotal()

	// IncMultiQueryError increments the multi-result query error counter.
	IncMultiQueryError()

	// ObserveMultiQueryDuration records a multi-result query duration in seconds.
	ObserveMultiQueryDuration(seconds float64)

	// IncResultSetsDecoded adds count to the decoded result set counter.
	IncResultSetsDecoded(count int)
}
