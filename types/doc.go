// Package types provides shared types and error definitions for the
// FunkyDapper library.
//
// This is a leaf package with zero FunkyDapper imports to prevent import
// cycles. All packages in FunkyDapper can safely import this package.
//
// # Validated scalars
//
// ConnString, SQLText, and ParamName are smart-constructed wrappers around
// raw strings. Their constructors reject empty or whitespace-only input and
// apply no other transformation; the wrapped value is returned unchanged by
// Raw(). The zero value of each type is invalid and must not be used.
//
// # Errors
//
// Sentinel errors classify every failure the library can produce:
//
//   - ErrInvalidSQL: SQL text failed validation
//   - ErrInvalidParameter: a parameter name or parameter usage was invalid
//   - ErrInvalidConnString: a connection string failed validation
//   - ErrFailedCall: the underlying driver faulted during open or dispatch
//
// Validation failures are reported as *ValidationError and driver faults as
// *CallError; both unwrap to their sentinel for errors.Is checks.
package types
