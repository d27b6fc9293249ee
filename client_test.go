package funkydapper

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	sqladapter "github.com/rahicks26/FunkyDapper/adapter/sql"
	"github.com/rahicks26/FunkyDapper/types"
)

// newMockClient builds a client over a sqlmock database. When monitorPings
// is set, every operation's open check must be expected via ExpectPing.
func newMockClient(t *testing.T, monitorPings bool) (*Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.MonitorPingsOption(monitorPings),
	)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client, err := NewClient(sqladapter.NewDBAdapter(db))
	require.NoError(t, err)

	return client, mock
}

func mustText(t *testing.T, rawSQL string, params ...Param) Statement {
	t.Helper()

	stmt, err := Text(rawSQL, params...)
	require.NoError(t, err)

	return stmt
}

func TestNewClientNilDB(t *testing.T) {
	_, err := NewClient(nil)
	require.ErrorIs(t, err, types.ErrNilDB)
}

func TestOpenInvalidConnString(t *testing.T) {
	_, err := Open("sqlite3", "")
	require.ErrorIs(t, err, types.ErrInvalidConnString)

	_, err = Open("sqlite3", "   ")
	require.ErrorIs(t, err, types.ErrInvalidConnString)
}

func TestOpenAndPing(t *testing.T) {
	client, err := Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(t.Context()))
}

func TestExecute(t *testing.T) {
	client, mock := newMockClient(t, false)

	mock.ExpectExec("INSERT INTO t (Id) VALUES (@id)").
		WillReturnResult(sqlmock.NewResult(1, 1))

	stmt := mustText(t, "INSERT INTO t (Id) VALUES (@id)", Param{Name: "id", Value: 1})
	require.NoError(t, client.Execute(t.Context(), stmt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteDriverFault(t *testing.T) {
	client, mock := newMockClient(t, false)

	mock.ExpectExec("DELETE FROM t").
		WillReturnError(errors.New("table is locked"))

	err := client.Execute(t.Context(), mustText(t, "DELETE FROM t"))
	require.ErrorIs(t, err, types.ErrFailedCall)

	var callErr *types.CallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, "execute", callErr.Op)
	require.Contains(t, callErr.Cause.Error(), "table is locked")
}

func TestExecuteOpenFailureSkipsDispatch(t *testing.T) {
	client, mock := newMockClient(t, true)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err := client.Execute(t.Context(), mustText(t, "DELETE FROM t"))
	require.ErrorIs(t, err, types.ErrFailedCall)

	var callErr *types.CallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, "open", callErr.Op)

	// The dispatch step must never be attempted after a failed open.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteAfterClose(t *testing.T) {
	client, _ := newMockClient(t, false)
	require.NoError(t, client.Close())

	err := client.Execute(t.Context(), mustText(t, "DELETE FROM t"))
	require.ErrorIs(t, err, types.ErrClientClosed)
	require.True(t, client.IsClosed())
}

func TestCloseIdempotent(t *testing.T) {
	client, _ := newMockClient(t, false)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}

type userRow struct {
	ID   int64  `db:"Id"`
	Name string `db:"Name"`
}

func TestQuery(t *testing.T) {
	client, mock := newMockClient(t, false)

	mock.ExpectQuery("SELECT Id, Name FROM Users WHERE Id = @id").
		WillReturnRows(sqlmock.NewRows([]string{"Id", "Name"}).AddRow(1, "Alice"))

	stmt := mustText(t, "SELECT Id, Name FROM Users WHERE Id = @id", Param{Name: "id", Value: 1})
	users, err := Query[userRow](t.Context(), client, stmt)
	require.NoError(t, err)
	require.Equal(t, []userRow{{ID: 1, Name: "Alice"}}, users)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryEmptyResultSet(t *testing.T) {
	client, mock := newMockClient(t, false)

	mock.ExpectQuery("SELECT Id, Name FROM Users").
		WillReturnRows(sqlmock.NewRows([]string{"Id", "Name"}))

	users, err := Query[userRow](t.Context(), client, mustText(t, "SELECT Id, Name FROM Users"))
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestQueryDriverFault(t *testing.T) {
	client, mock := newMockClient(t, false)

	mock.ExpectQuery("SELECT Id, Name FROM Users").
		WillReturnError(errors.New("no such table"))

	_, err := Query[userRow](t.Context(), client, mustText(t, "SELECT Id, Name FROM Users"))
	require.ErrorIs(t, err, types.ErrFailedCall)

	var callErr *types.CallError
	require.ErrorAs(t, err, &callErr)
	require.Equal(t, "query", callErr.Op)
}

func TestQueryOpenFailureSkipsDispatch(t *testing.T) {
	client, mock := newMockClient(t, true)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	_, err := Query[userRow](t.Context(), client, mustText(t, "SELECT Id FROM Users"))
	require.ErrorIs(t, err, types.ErrFailedCall)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryAfterClose(t *testing.T) {
	client, _ := newMockClient(t, false)
	require.NoError(t, client.Close())

	_, err := Query[userRow](t.Context(), client, mustText(t, "SELECT Id FROM Users"))
	require.ErrorIs(t, err, types.ErrClientClosed)
}

func TestQuerySQLiteEndToEnd(t *testing.T) {
	ctx := context.Background()

	// A file-backed database keeps state stable across pooled connections.
	dsn := "file:" + filepath.Join(t.TempDir(), "e2e.db")
	client, err := Open("sqlite3", dsn)
	require.NoError(t, err)
	defer client.Close()

	setup := mustText(t, "CREATE TABLE Users (Id INTEGER PRIMARY KEY, Name TEXT NOT NULL)")
	require.NoError(t, client.Execute(ctx, setup))

	insert := mustText(t, "INSERT INTO Users (Id, Name) VALUES (@id, @name)",
		Param{Name: "id", Value: 1},
		Param{Name: "name", Value: "Alice"},
	)
	require.NoError(t, client.Execute(ctx, insert))

	query := mustText(t, "SELECT Id, Name FROM Users WHERE Id = @id",
		Param{Name: "id", Value: 1},
	)
	users, err := Query[userRow](ctx, client, query)
	require.NoError(t, err)
	require.Equal(t, []userRow{{ID: 1, Name: "Alice"}}, users)

	absent := mustText(t, "SELECT Id, Name FROM Users WHERE Id = @id",
		Param{Name: "id", Value: 2},
	)
	none, err := Query[userRow](ctx, client, absent)
	require.NoError(t, err)
	require.Empty(t, none)
}
