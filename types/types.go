package types

import "strings"

// ConnString is a validated database connection string.
//
// Construct via NewConnString; the zero value is invalid.
type ConnString struct {
	raw string
}

// NewConnString validates raw and wraps it in a ConnString.
//
// Parameters:
//   - raw: The connection string as accepted by the target driver
//
// Returns:
//   - ConnString: The validated connection string
//   - error: *ValidationError wrapping ErrInvalidConnString if raw is empty
//     or whitespace-only
func NewConnString(raw string) (ConnString, error) {
	if isBlank(raw) {
		return ConnString{}, NewInvalidConnString("connection string cannot be empty")
	}

	return ConnString{raw: raw}, nil
}

// Raw returns the underlying connection string unchanged.
func (c ConnString) Raw() string {
	return c.raw
}

// String implements fmt.Stringer. The value is redacted to keep credentials
// out of log output; use Raw at the driver boundary.
func (c ConnString) String() string {
	return "ConnString(redacted)"
}

// SQLText is a validated, immutable piece of raw SQL.
//
// Construct via NewSQLText; the zero value is invalid.
type SQLText struct {
	raw string
}

// NewSQLText validates raw and wraps it in a SQLText.
//
// Parameters:
//   - raw: The SQL text. No trimming or casing is applied.
//
// Returns:
//   - SQLText: The validated SQL text
//   - error: *ValidationError wrapping ErrInvalidSQL if raw is empty or
//     whitespace-only
func NewSQLText(raw string) (SQLText, error) {
	if isBlank(raw) {
		return SQLText{}, NewInvalidSQL("sql text cannot be empty")
	}

	return SQLText{raw: raw}, nil
}

// Raw returns the underlying SQL text unchanged.
func (t SQLText) Raw() string {
	return t.raw
}

// Join concatenates two SQL texts with a newline, producing a new SQLText.
// Both operands are left unchanged.
func (t SQLText) Join(other SQLText) SQLText {
	return SQLText{raw: t.raw + "\n" + other.raw}
}

// ParamName is a validated name of a SQL placeholder.
//
// Construct via NewParamName; the zero value is invalid.
type ParamName struct {
	raw string
}

// NewParamName validates raw and wraps it in a ParamName.
//
// Parameters:
//   - raw: The placeholder name without the leading "@"
//
// Returns:
//   - ParamName: The validated parameter name
//   - error: *ValidationError wrapping ErrInvalidParameter if raw is empty
//     or whitespace-only
func NewParamName(raw string) (ParamName, error) {
	if isBlank(raw) {
		return ParamName{}, NewInvalidParameter("parameter name cannot be empty")
	}

	return ParamName{raw: raw}, nil
}

// Raw returns the underlying parameter name unchanged.
func (p ParamName) Raw() string {
	return p.raw
}

// Placeholder returns the "@name" form used to reference the parameter
// inside SQL text.
func (p ParamName) Placeholder() string {
	return "@" + p.raw
}

// CommandKind is the two-valued flag passed to the driver that distinguishes
// plain SQL text from a stored procedure call.
type CommandKind int

const (
	// CommandText dispatches the statement as raw SQL text.
	CommandText CommandKind = iota

	// CommandStoredProcedure dispatches the statement as a stored procedure
	// call; the SQL text holds the procedure name.
	CommandStoredProcedure
)

// String returns the string representation of the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandText:
		return "text"
	case CommandStoredProcedure:
		return "stored_procedure"
	default:
		return "unknown"
	}
}

// isBlank reports whether s is empty or consists only of whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
