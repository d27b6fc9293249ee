package sql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rahicks26/FunkyDapper/types"
)

// DB represents a database connection that can be used with FunkyDapper.
//
// This interface wraps *sql.DB so the client never depends on a concrete
// driver, which keeps the execution wrapper testable without a database.
type DB interface {
	// PingContext verifies the connection is open and reachable.
	PingContext(ctx context.Context) error

	// ExecContext executes a command without returning any rows.
	ExecContext(ctx context.Context, query string, kind types.CommandKind, args ...any) (sql.Result, error)

	// QueryContext executes a command that returns one or more result sets.
	QueryContext(ctx context.Context, query string, kind types.CommandKind, args ...any) (*sql.Rows, error)

	// Close closes the database connection.
	Close() error
}

// dbAdapter wraps *sql.DB to implement the DB interface.
type dbAdapter struct {
	db *sql.DB
}

// NewDBAdapter creates a new DB adapter wrapping a *sql.DB.
//
// Parameters:
//   - db: The underlying sql.DB to wrap
//
// Returns:
//   - DB: An adapter implementing the DB interface
func NewDBAdapter(db *sql.DB) DB {
	return &dbAdapter{db: db}
}

// WrapDB is an alias for NewDBAdapter that wraps a *sql.DB.
//
// This is useful for migrating existing database/sql code to FunkyDapper.
//
// Example:
//
//	db, _ := sql.Open("sqlite3", dsn)
//	client, _ := funkydapper.NewClient(sqladapter.WrapDB(db))
//
// Parameters:
//   - db: The underlying sql.DB to wrap
//
// Returns:
//   - DB: An adapter implementing the DB interface
func WrapDB(db *sql.DB) DB {
	return NewDBAdapter(db)
}

// PingContext verifies the connection is open and reachable.
func (a *dbAdapter) PingContext(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

// ExecContext executes a command without returning any rows.
func (a *dbAdapter) ExecContext(ctx context.Context, query string, kind types.CommandKind, args ...any) (sql.Result, error) {
	return a.db.ExecContext(ctx, renderCommand(query, kind, args), args...)
}

// QueryContext executes a command that returns one or more result sets.
func (a *dbAdapter) QueryContext(ctx context.Context, query string, kind types.CommandKind, args ...any) (*sql.Rows, error) {
	return a.db.QueryContext(ctx, renderCommand(query, kind, args), args...)
}

// Close closes the database connection.
func (a *dbAdapter) Close() error {
	return a.db.Close()
}

// renderCommand produces the SQL string handed to database/sql.
//
// Plain-text commands pass through untouched. Stored-procedure commands are
// rendered as "EXEC <name> @p = @p, ..." with one assignment per named
// argument, since database/sql has no command-type flag of its own.
func renderCommand(query string, kind types.CommandKind, args []any) string {
	if kind != types.CommandStoredProcedure {
		return query
	}

	var b strings.Builder
	b.WriteString("EXEC ")
	b.WriteString(query)

	wrote := false
	for _, arg := range args {
		named, ok := arg.(sql.NamedArg)
		if !ok {
			continue
		}

		if wrote {
			b.WriteString(",")
		}
		b.WriteString(" @")
		b.WriteString(named.Name)
		b.WriteString(" = @")
		b.WriteString(named.Name)
		wrote = true
	}

	return b.String()
}
