// Package funkydapper provides a validated query-construction and execution
// layer between application code and a database/sql driver.
//
// Every statement sent to the database carries a consistent set of named
// parameters, malformed input (empty SQL text, empty parameter names, empty
// connection strings) is rejected before any network call, and every call
// outcome is an explicit error value rather than a panic.
//
// # Key Features
//
//   - Validated Scalars: smart-constructed connection strings, SQL text, and
//     parameter names that cannot hold empty or whitespace-only values
//   - Parameterized Statements: "@name" placeholders with a construction-time
//     check that declared parameters are actually referenced
//   - Statement Kinds: plain text vs stored procedure, carried through to the
//     driver; only same-kind statements can be appended
//   - Typed Call Results: driver faults are caught at a single boundary and
//     surfaced as *types.CallError, never re-raised
//   - Multi-Result Decoding: fixed-arity helpers that materialize two, three,
//     or four result sets from a single round trip
//
// # Basic Usage
//
//	client, err := funkydapper.Open("sqlite3", "file:app.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	stmt, err := funkydapper.Text(
//	    "SELECT Id, Name FROM Users WHERE Id = @id",
//	    funkydapper.Param{Name: "id", Value: 1},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	users, err := funkydapper.Query[UserRow](ctx, client, stmt)
//
// # Error Handling
//
// Validation failures are detected synchronously and returned before any I/O
// is attempted. Classify them with errors.Is against the sentinels in the
// types package:
//
//	if errors.Is(err, types.ErrInvalidParameter) {
//	    // a parameter name was empty or never referenced in the SQL
//	}
//
// Driver faults during open or dispatch are wrapped in *types.CallError and
// match types.ErrFailedCall:
//
//	var callErr *types.CallError
//	if errors.As(err, &callErr) {
//	    log.Printf("stage %s failed: %v", callErr.Op, callErr.Cause)
//	}
//
// No retries are performed anywhere; a single failure is terminal for that
// call and must be handled or retried by the caller.
//
// # Connection Lifecycle
//
// Operations verify the connection is open before dispatching but never
// close it; the caller owns the connection and releases it with Close.
// Connections are generally not safe for concurrent use by a driver's own
// contract, so do not share a Client across concurrent calls without
// external serialization.
package funkydapper
