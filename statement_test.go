package funkydapper

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rahicks26/FunkyDapper/types"
)

func TestText(t *testing.T) {
	stmt, err := Text(
		"SELECT * FROM t WHERE id = @id",
		Param{Name: "id", Value: 5},
	)
	require.NoError(t, err)
	require.Equal(t, types.CommandText, stmt.Kind())
	require.Equal(t, "SELECT * FROM t WHERE id = @id", stmt.SQL())
	require.Equal(t, []Param{{Name: "id", Value: 5}}, stmt.Params())
}

func TestTextNoParams(t *testing.T) {
	// An empty parameter list trivially passes the usage check.
	stmt, err := Text("DELETE FROM t")
	require.NoError(t, err)
	require.Empty(t, stmt.Params())
}

func TestTextEmptySQL(t *testing.T) {
	_, err := Text("", Param{Name: "id", Value: 1})
	require.ErrorIs(t, err, types.ErrInvalidSQL)

	_, err = Text("   ")
	require.ErrorIs(t, err, types.ErrInvalidSQL)
}

func TestTextInvalidParamName(t *testing.T) {
	// Validation short-circuits: sql is checked first, then names in order.
	_, err := Text("SELECT * FROM t WHERE id = @id",
		Param{Name: "", Value: 1},
		Param{Name: "id", Value: 2},
	)
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	var vErr *types.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "parameter name cannot be empty", vErr.Reason)
}

func TestTextUnusedParameters(t *testing.T) {
	_, err := Text("SELECT * FROM t", Param{Name: "id", Value: 5})
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	var vErr *types.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "ensure all parameters are used at least once", vErr.Reason)
}

func TestTextUsageCheckIsWeak(t *testing.T) {
	// The usage check only requires that SOME declared parameter is
	// referenced: extra unreferenced parameters still pass. Callers must
	// not rely on construction to catch every dangling binding.
	stmt, err := Text(
		"SELECT * FROM t WHERE id = @id",
		Param{Name: "id", Value: 1},
		Param{Name: "unused", Value: 2},
	)
	require.NoError(t, err)
	require.Len(t, stmt.Params(), 2)
}

func TestStoredProcedure(t *testing.T) {
	stmt, err := StoredProcedure("usp_GetUser @id", Param{Name: "id", Value: 7})
	require.NoError(t, err)
	require.Equal(t, types.CommandStoredProcedure, stmt.Kind())
}

func TestAppendSameKind(t *testing.T) {
	first, err := Text("UPDATE t SET a = @a WHERE id = @id",
		Param{Name: "a", Value: 1},
		Param{Name: "id", Value: 10},
	)
	require.NoError(t, err)

	second, err := Text("UPDATE t SET b = @b WHERE id = @id",
		Param{Name: "b", Value: 2},
		Param{Name: "id", Value: 10},
	)
	require.NoError(t, err)

	combined, err := first.Append(second)
	require.NoError(t, err)

	require.Equal(t,
		"UPDATE t SET a = @a WHERE id = @id\nUPDATE t SET b = @b WHERE id = @id",
		combined.SQL(),
	)

	// The duplicate ("id", 10) pair collapses; the rest survive in order.
	require.Equal(t, []Param{
		{Name: "a", Value: 1},
		{Name: "id", Value: 10},
		{Name: "b", Value: 2},
	}, combined.Params())
}

func TestAppendKindMismatch(t *testing.T) {
	text, err := Text("SELECT 1")
	require.NoError(t, err)

	proc, err := StoredProcedure("usp_Get")
	require.NoError(t, err)

	_, err = text.Append(proc)
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	var vErr *types.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "only statements of the same kind can be appended", vErr.Reason)
}

func TestAppendToItself(t *testing.T) {
	stmt, err := Text("INSERT INTO t (id) VALUES (@id)", Param{Name: "id", Value: 1})
	require.NoError(t, err)

	doubled, err := stmt.Append(stmt)
	require.NoError(t, err)

	// SQL text is concatenated twice; the identical binding collapses once.
	require.Equal(t,
		"INSERT INTO t (id) VALUES (@id)\nINSERT INTO t (id) VALUES (@id)",
		doubled.SQL(),
	)
	require.Equal(t, []Param{{Name: "id", Value: 1}}, doubled.Params())
}

func TestAppendSameNameDifferentValues(t *testing.T) {
	first, err := Text("SELECT * FROM t WHERE id = @id", Param{Name: "id", Value: 1})
	require.NoError(t, err)

	second, err := Text("SELECT * FROM u WHERE id = @id", Param{Name: "id", Value: 2})
	require.NoError(t, err)

	combined, err := first.Append(second)
	require.NoError(t, err)

	// Same name, different values: both survive; resolution is the
	// caller's responsibility.
	require.Equal(t, []Param{
		{Name: "id", Value: 1},
		{Name: "id", Value: 2},
	}, combined.Params())
}

func TestStatementValue(t *testing.T) {
	stmt, err := Text("SELECT * FROM t WHERE a = @a AND b = @b",
		Param{Name: "a", Value: 1},
		Param{Name: "b", Value: "x"},
	)
	require.NoError(t, err)

	query, args, kind := stmt.value()
	require.Equal(t, "SELECT * FROM t WHERE a = @a AND b = @b", query)
	require.Equal(t, types.CommandText, kind)
	require.Equal(t, []any{
		sql.Named("a", 1),
		sql.Named("b", "x"),
	}, args)
}

func TestStatementValueLaterDuplicateWins(t *testing.T) {
	first, err := Text("SELECT * FROM t WHERE id = @id", Param{Name: "id", Value: 1})
	require.NoError(t, err)

	second, err := Text("SELECT * FROM u WHERE id = @id", Param{Name: "id", Value: 2})
	require.NoError(t, err)

	combined, err := first.Append(second)
	require.NoError(t, err)

	// Both bindings survive the append, but the driver mapping is keyed by
	// name with later values overwriting earlier ones.
	_, args, _ := combined.value()
	require.Equal(t, []any{sql.Named("id", 2)}, args)
}
