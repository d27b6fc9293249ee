package funkydapper

import (
	"database/sql"
	"reflect"
	"strings"

	"github.com/rahicks26/FunkyDapper/types"
)

// Param supplies a named value for a placeholder in SQL text.
//
// The value is opaque to the library: it is handed to the driver unchanged.
type Param struct {
	Name  string
	Value any
}

// binding is a validated (name, value) pair held by a Statement.
type binding struct {
	name  types.ParamName
	value any
}

// Statement is a validated, fully-formed unit of SQL bundled with its
// parameter bindings and the command kind used to dispatch it.
//
// Statements are immutable: they are created via Text or StoredProcedure,
// never mutated in place, and combined via Append which produces a new
// Statement. The zero value is invalid.
type Statement struct {
	kind     types.CommandKind
	text     types.SQLText
	bindings []binding
}

// Text builds a plain-text Statement from raw SQL and its parameters.
//
// Validation is fail-fast: the SQL text is checked first, then every
// parameter name in declaration order, and the first failure wins. When the
// parameter list is non-empty, at least one parameter name must occur in the
// SQL as a literal "@name" placeholder.
//
// The usage check is literal substring containment, not SQL parsing: it
// catches parameters that are never referenced, but it does not verify that
// every "@token" in the SQL has a matching binding, and a name appearing
// inside a string literal or comment counts as a reference.
//
// Parameters:
//   - rawSQL: The SQL text to execute
//   - params: Named values for the placeholders in rawSQL
//
// Returns:
//   - Statement: The validated statement
//   - error: *types.ValidationError describing the first violated rule
func Text(rawSQL string, params ...Param) (Statement, error) {
	return newStatement(types.CommandText, rawSQL, params)
}

// StoredProcedure builds a stored-procedure Statement. The SQL text holds
// the procedure name; validation rules are identical to Text.
//
// Parameters:
//   - rawSQL: The stored procedure name
//   - params: Named values passed to the procedure
//
// Returns:
//   - Statement: The validated statement
//   - error: *types.ValidationError describing the first violated rule
func StoredProcedure(rawSQL string, params ...Param) (Statement, error) {
	return newStatement(types.CommandStoredProcedure, rawSQL, params)
}

// newStatement validates rawSQL and params and assembles a Statement.
func newStatement(kind types.CommandKind, rawSQL string, params []Param) (Statement, error) {
	text, err := types.NewSQLText(rawSQL)
	if err != nil {
		return Statement{}, err
	}

	bindings := make([]binding, 0, len(params))
	for _, p := range params {
		name, err := types.NewParamName(p.Name)
		if err != nil {
			return Statement{}, err
		}
		bindings = append(bindings, binding{name: name, value: p.Value})
	}

	if len(bindings) > 0 && !anyReferenced(rawSQL, bindings) {
		return Statement{}, types.NewInvalidParameter("ensure all parameters are used at least once")
	}

	return Statement{kind: kind, text: text, bindings: bindings}, nil
}

// anyReferenced reports whether at least one binding's "@name" placeholder
// occurs in the SQL text.
func anyReferenced(rawSQL string, bindings []binding) bool {
	for _, b := range bindings {
		if strings.Contains(rawSQL, b.name.Placeholder()) {
			return true
		}
	}

	return false
}

// Kind returns the command kind the statement dispatches as.
func (s Statement) Kind() types.CommandKind {
	return s.kind
}

// SQL returns the statement's SQL text.
func (s Statement) SQL() string {
	return s.text.Raw()
}

// Params returns a copy of the statement's parameters in declaration order.
func (s Statement) Params() []Param {
	out := make([]Param, len(s.bindings))
	for i, b := range s.bindings {
		out[i] = Param{Name: b.name.Raw(), Value: b.value}
	}

	return out
}

// Append combines two statements of the same kind into a new Statement.
//
// The SQL texts are joined with a newline and the parameter lists are
// concatenated with exact duplicate (name, value) pairs removed. Duplicate
// names carrying different values both survive; resolving those is the
// caller's responsibility. The parameter-usage invariant is not re-checked.
//
// Parameters:
//   - other: The statement to append; must carry the same command kind
//
// Returns:
//   - Statement: The combined statement
//   - error: *types.ValidationError wrapping ErrInvalidParameter when the
//     kinds differ
func (s Statement) Append(other Statement) (Statement, error) {
	if s.kind != other.kind {
		return Statement{}, types.NewInvalidParameter("only statements of the same kind can be appended")
	}

	merged := make([]binding, 0, len(s.bindings)+len(other.bindings))
	merged = append(merged, s.bindings...)
	merged = append(merged, other.bindings...)

	return Statement{
		kind:     s.kind,
		text:     s.text.Join(other.text),
		bindings: dedupeBindings(merged),
	}, nil
}

// dedupeBindings removes exact duplicate (name, value) pairs, keeping the
// first occurrence. Values are compared structurally since they are opaque.
func dedupeBindings(in []binding) []binding {
	out := make([]binding, 0, len(in))
	for _, b := range in {
		dup := false
		for _, seen := range out {
			if seen.name == b.name && reflect.DeepEqual(seen.value, b.value) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, b)
		}
	}

	return out
}

// value unwraps the statement for the driver boundary: the raw SQL string,
// the bindings as sql.Named arguments, and the command kind flag.
//
// Bindings are keyed by name with later duplicate names overwriting earlier
// ones; argument order follows first appearance. This is the only path by
// which a statement's contents reach the driver.
func (s Statement) value() (string, []any, types.CommandKind) {
	byName := make(map[string]any, len(s.bindings))
	order := make([]string, 0, len(s.bindings))

	for _, b := range s.bindings {
		name := b.name.Raw()
		if _, ok := byName[name]; !ok {
			order = append(order, name)
		}
		byName[name] = b.value
	}

	args := make([]any, 0, len(order))
	for _, name := range order {
		args = append(args, sql.Named(name, byName[name]))
	}

	return s.text.Raw(), args, s.kind
}
