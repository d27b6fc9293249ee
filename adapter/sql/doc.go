// Package sql provides the driver boundary for FunkyDapper.
//
// This package defines the narrow DB interface the client dispatches
// through, plus an adapter wrapping the standard library's *sql.DB.
//
// The adapter is where the statement's command kind crosses into driver
// territory: plain-text statements are passed through unchanged, while
// stored-procedure statements are rendered into an EXEC call because
// database/sql has no native command-type flag.
package sql
