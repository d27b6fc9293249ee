package types

import "errors"

// Sentinel errors classifying every failure the library can produce.
var (
	// ErrInvalidSQL indicates SQL text failed validation.
	ErrInvalidSQL = errors.New("funkydapper: invalid sql text")

	// ErrInvalidParameter indicates a parameter name failed validation, a
	// declared parameter was never referenced in the SQL text, or two
	// statements of different kinds were appended.
	ErrInvalidParameter = errors.New("funkydapper: invalid parameter")

	// ErrInvalidConnString indicates a connection string failed validation.
	ErrInvalidConnString = errors.New("funkydapper: invalid connection string")

	// ErrFailedCall indicates the underlying driver faulted during
	// connection open or command dispatch.
	ErrFailedCall = errors.New("funkydapper: database call failed")

	// ErrNilDB indicates a nil database was provided to the client.
	ErrNilDB = errors.New("funkydapper: database cannot be nil")

	// ErrClientClosed indicates an operation was attempted on a closed client.
	ErrClientClosed = errors.New("funkydapper: client is closed")

	// ErrCursorClosed indicates a read was attempted on a cursor that has
	// already been released.
	ErrCursorClosed = errors.New("funkydapper: cursor is closed")
)

// ValidationError is a validation failure detected before any I/O.
//
// Kind is one of the ErrInvalid* sentinels so callers can classify the
// failure with errors.Is; Reason describes the violated rule.
type ValidationError struct {
	Kind   error
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Kind.Error() + ": " + e.Reason
}

// Unwrap returns the sentinel kind for errors.Is compatibility.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// NewInvalidSQL returns a *ValidationError of kind ErrInvalidSQL.
func NewInvalidSQL(reason string) error {
	return &ValidationError{Kind: ErrInvalidSQL, Reason: reason}
}

// NewInvalidParameter returns a *ValidationError of kind ErrInvalidParameter.
func NewInvalidParameter(reason string) error {
	return &ValidationError{Kind: ErrInvalidParameter, Reason: reason}
}

// NewInvalidConnString returns a *ValidationError of kind ErrInvalidConnString.
func NewInvalidConnString(reason string) error {
	return &ValidationError{Kind: ErrInvalidConnString, Reason: reason}
}

// CallError wraps a fault raised by the underlying driver during connection
// open or command dispatch. No driver fault ever escapes the library in any
// other form.
type CallError struct {
	// Op describes the stage that faulted: "open", "execute", "query", or
	// "query multiple".
	Op string

	// Cause is the fault raised by the driver, carried verbatim.
	Cause error
}

// Error implements the error interface.
func (e *CallError) Error() string {
	return "funkydapper: " + e.Op + " failed: " + e.Cause.Error()
}

// Unwrap returns the wrapped errors for errors.Is/As compatibility. Both
// ErrFailedCall and the driver's own error can be matched.
func (e *CallError) Unwrap() []error {
	return []error{ErrFailedCall, e.Cause}
}
