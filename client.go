package funkydapper

import (
	"context"
	"database/sql"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	sqladapter "github.com/rahicks26/FunkyDapper/adapter/sql"
	"github.com/rahicks26/FunkyDapper/internal/scan"
	"github.com/rahicks26/FunkyDapper/types"
)

// Client is the FunkyDapper execution wrapper around a database connection.
//
// Every operation verifies the connection is open, dispatches the statement
// through the driver boundary, and converts any driver fault into a
// *types.CallError. No fault ever escapes as a panic, no retries are
// attempted, and a single failure is terminal for that call.
//
// The client verifies openness per call but never closes the connection on
// its own; the caller owns the connection lifecycle and releases it with
// Close. A Client must not be shared across concurrent calls unless the
// underlying driver connection is safe for concurrent use.
type Client struct {
	db     sqladapter.DB
	config *ClientConfig
	closed atomic.Bool
}

// NewClient creates a new FunkyDapper client around an existing database.
//
// Parameters:
//   - db: The driver boundary to dispatch through (required)
//   - opts: Optional configuration options
//
// Returns:
//   - *Client: A new client
//   - error: types.ErrNilDB if db is nil
func NewClient(db sqladapter.DB, opts ...Option) (*Client, error) {
	if db == nil {
		return nil, types.ErrNilDB
	}

	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	// Defend against options explicitly setting nil
	if config.Logger == nil {
		config.Logger = DefaultConfig().Logger
	}
	if config.Metrics == nil {
		config.Metrics = DefaultConfig().Metrics
	}

	return &Client{db: db, config: config}, nil
}

// Open validates the connection string, opens a database handle with the
// named driver, and wraps it in a Client.
//
// sql.Open does not dial the database; the first operation's open check
// surfaces connectivity problems as *types.CallError.
//
// Parameters:
//   - driverName: A registered database/sql driver name
//   - dsn: The connection string for the driver
//   - opts: Optional configuration options
//
// Returns:
//   - *Client: A new client owning the opened handle
//   - error: Validation or driver error
func Open(driverName, dsn string, opts ...Option) (*Client, error) {
	connStr, err := types.NewConnString(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, connStr.Raw())
	if err != nil {
		return nil, &types.CallError{Op: "open", Cause: err}
	}

	return NewClient(sqladapter.NewDBAdapter(db), opts...)
}

// Execute dispatches the statement as a non-query command, discarding the
// row count.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - stmt: The statement to execute
//
// Returns:
//   - error: nil on success, *types.CallError on any driver fault
func (c *Client) Execute(ctx context.Context, stmt Statement) error {
	if c.closed.Load() {
		return types.ErrClientClosed
	}

	c.config.Metrics.IncExecTotal()
	start := time.Now()

	query, args, kind := stmt.value()
	callID := uuid.NewString()
	c.config.Logger.Debug("executing statement",
		"callID", callID,
		"kind", kind.String(),
	)

	if err := c.open(ctx, callID); err != nil {
		c.config.Metrics.IncExecError()
		return err
	}

	if _, err := c.db.ExecContext(ctx, query, kind, args...); err != nil {
		c.config.Metrics.IncExecError()
		c.config.Logger.Error("statement execution failed",
			"callID", callID,
			"error", err.Error(),
		)

		return &types.CallError{Op: "execute", Cause: err}
	}

	c.config.Metrics.ObserveExecDuration(time.Since(start).Seconds())

	return nil
}

// Ping verifies the underlying connection is open and reachable.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//
// Returns:
//   - error: nil if reachable, *types.CallError otherwise
func (c *Client) Ping(ctx context.Context) error {
	if c.closed.Load() {
		return types.ErrClientClosed
	}

	return c.open(ctx, "")
}

// Close releases the underlying connection. After Close is called, the
// client cannot be reused. Close is idempotent.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil // Already closed
	}

	return c.db.Close()
}

// IsClosed reports whether Close has been called.
func (c *Client) IsClosed() bool {
	return c.closed.Load()
}

// open verifies the connection before dispatch. A failure here aborts the
// whole operation; the subsequent dispatch step is never attempted.
func (c *Client) open(ctx context.Context, callID string) error {
	if err := c.db.PingContext(ctx); err != nil {
		c.config.Logger.Error("connection open failed",
			"callID", callID,
			"error", err.Error(),
		)

		return &types.CallError{Op: "open", Cause: err}
	}

	return nil
}

// Query dispatches the statement as a single-result-set query and maps every
// row into T.
//
// T may be a struct (columns matched via `db` tags or field names) or, for
// single-column result sets, a primitive or sql.Scanner implementation.
// Query is a package-level function because Go methods cannot introduce type
// parameters.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - c: The client to dispatch through
//   - stmt: The statement to execute
//
// Returns:
//   - []T: Every row of the result set, in driver order; empty when the
//     result set has no rows
//   - error: *types.CallError on any driver or mapping fault
func Query[T any](ctx context.Context, c *Client, stmt Statement) ([]T, error) {
	if c.closed.Load() {
		return nil, types.ErrClientClosed
	}

	c.config.Metrics.IncQueryTotal()
	start := time.Now()

	query, args, kind := stmt.value()
	callID := uuid.NewString()
	c.config.Logger.Debug("querying statement",
		"callID", callID,
		"kind", kind.String(),
	)

	if err := c.open(ctx, callID); err != nil {
		c.config.Metrics.IncQueryError()
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, query, kind, args...)
	if err != nil {
		c.config.Metrics.IncQueryError()
		c.config.Logger.Error("query failed",
			"callID", callID,
			"error", err.Error(),
		)

		return nil, &types.CallError{Op: "query", Cause: err}
	}
	defer rows.Close()

	out, err := scan.All[T](rows)
	if err != nil {
		c.config.Metrics.IncQueryError()
		c.config.Logger.Error("row mapping failed",
			"callID", callID,
			"error", err.Error(),
		)

		return nil, &types.CallError{Op: "query", Cause: err}
	}

	c.config.Metrics.ObserveQueryDuration(time.Since(start).Seconds())

	return out, nil
}

// QueryMultiple dispatches the statement as a multi-result-set query and
// applies decode to the resulting cursor while it is still open.
//
// The cursor is a scoped resource: it never escapes decode, and it is
// released on every exit path, including when decode faults. Compose decode
// from the fixed-arity helpers ReadPair, ReadTriple, and ReadQuad.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - c: The client to dispatch through
//   - stmt: The statement to execute
//   - decode: Function consuming the open cursor into an R
//
// Returns:
//   - R: The decoded value
//   - error: *types.CallError on any driver or decode fault
func QueryMultiple[R any](ctx context.Context, c *Client, stmt Statement, decode func(*Cursor) (R, error)) (R, error) {
	var zero R

	if c.closed.Load() {
		return zero, types.ErrClientClosed
	}

	c.config.Metrics.IncMultiQueryTotal()
	start := time.Now()

	query, args, kind := stmt.value()
	callID := uuid.NewString()
	c.config.Logger.Debug("querying statement for multiple result sets",
		"callID", callID,
		"kind", kind.String(),
	)

	if err := c.open(ctx, callID); err != nil {
		c.config.Metrics.IncMultiQueryError()
		return zero, err
	}

	rows, err := c.db.QueryContext(ctx, query, kind, args...)
	if err != nil {
		c.config.Metrics.IncMultiQueryError()
		c.config.Logger.Error("multi-result query failed",
			"callID", callID,
			"error", err.Error(),
		)

		return zero, &types.CallError{Op: "query multiple", Cause: err}
	}

	cursor := &Cursor{rows: rows}
	defer cursor.Close()

	out, err := decode(cursor)
	if err != nil {
		c.config.Metrics.IncMultiQueryError()
		c.config.Logger.Error("result set decoding failed",
			"callID", callID,
			"error", err.Error(),
		)

		return zero, &types.CallError{Op: "query multiple", Cause: err}
	}

	c.config.Metrics.IncResultSetsDecoded(cursor.read)
	c.config.Metrics.ObserveMultiQueryDuration(time.Since(start).Seconds())

	return out, nil
}
