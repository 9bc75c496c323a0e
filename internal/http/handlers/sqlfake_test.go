package handlers

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"server/internal/infra"
)

type sqlCall struct {
	query string
	args  []any
}

// fakeSQL implements infra.SQLExecutor with per-method hooks. Every call is
// recorded so tests can assert which statements ran.
type fakeSQL struct {
	execFn     func(query string, args ...any) (pgconn.CommandTag, error)
	queryFn    func(query string, args ...any) (pgx.Rows, error)
	queryRowFn func(query string, args ...any) pgx.Row
	beginFn    func() (infra.SQLTx, error)

	calls []sqlCall
}

func (f *fakeSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, sqlCall{query: query, args: args})
	if f.execFn != nil {
		return f.execFn(query, args...)
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, sqlCall{query: query, args: args})
	if f.queryFn != nil {
		return f.queryFn(query, args...)
	}
	return &StaticRows{}, nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.calls = append(f.calls, sqlCall{query: query, args: args})
	if f.queryRowFn != nil {
		return f.queryRowFn(query, args...)
	}
	return SimpleRow{}
}

func (f *fakeSQL) Begin(_ context.Context) (infra.SQLTx, error) {
	if f.beginFn != nil {
		return f.beginFn()
	}
	return &fakeTx{}, nil
}

// fakeTx implements infra.SQLTx and records commit/rollback transitions.
type fakeTx struct {
	execFn     func(query string, args ...any) (pgconn.CommandTag, error)
	queryRowFn func(query string, args ...any) pgx.Row

	calls     []sqlCall
	commits   int
	rollbacks int
	commitErr error
}

func (t *fakeTx) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	t.calls = append(t.calls, sqlCall{query: query, args: args})
	if t.execFn != nil {
		return t.execFn(query, args...)
	}
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	t.calls = append(t.calls, sqlCall{query: query, args: args})
	return &StaticRows{}, nil
}

func (t *fakeTx) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	t.calls = append(t.calls, sqlCall{query: query, args: args})
	if t.queryRowFn != nil {
		return t.queryRowFn(query, args...)
	}
	return SimpleRow{}
}

func (t *fakeTx) Commit(context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rollbacks++
	return nil
}

var _ infra.SQLExecutor = (*fakeSQL)(nil)
var _ infra.SQLTx = (*fakeTx)(nil)
