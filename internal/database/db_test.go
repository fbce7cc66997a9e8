package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDBPanicsWithoutFns(t *testing.T) {
	db := &FakeDB{}
	ctx := context.Background()
	require.PanicsWithValue(t, "unexpected Exec", func() { _, _ = db.Exec(ctx, "") })
	require.PanicsWithValue(t, "unexpected Query", func() { _, _ = db.Query(ctx, "") })
	require.PanicsWithValue(t, "unexpected QueryRow", func() { _ = db.QueryRow(ctx, "") })
	require.PanicsWithValue(t, "unexpected Ping", func() { _ = db.Ping(ctx) })
	require.NotPanics(t, db.Close)
}

func TestFakeDBDelegates(t *testing.T) {
	var gotSQL string
	var gotArgs []any
	closed := false
	db := &FakeDB{
		ExecFn: func(_ context.Context, s string, args ...any) (pgconn.CommandTag, error) {
			gotSQL, gotArgs = s, args
			return pgconn.NewCommandTag("UPDATE 1"), errors.New("e")
		},
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return emptyRows{}, nil },
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return pgx.Row(emptyRows{})
		},
		PingFn:  func(context.Context) error { return nil },
		CloseFn: func() { closed = true },
	}
	ctx := context.Background()

	tag, err := db.Exec(ctx, "UPDATE medicines", 1, "x")
	require.Error(t, err)
	require.Equal(t, int64(1), tag.RowsAffected())
	require.Equal(t, "UPDATE medicines", gotSQL)
	require.Equal(t, []any{1, "x"}, gotArgs)

	rows, err := db.Query(ctx, "SELECT 1")
	require.NoError(t, err)
	require.False(t, rows.Next())
	require.NoError(t, db.QueryRow(ctx, "SELECT 1").Scan())
	require.NoError(t, db.Ping(ctx))
	db.Close()
	require.True(t, closed)
}
