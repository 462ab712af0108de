package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	"project-recommender/internal/database"
)

type execCall struct {
	query string
	args  []any
}

type fakeDB struct {
	rows     [][]any
	row      []any
	rowErr   error
	queryErr error
	execErr  error
	affected int64

	queries []execCall
	execs   []execCall
	tx      *fakeTx
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.execs = append(f.execs, execCall{query: query, args: args})
	if f.execErr != nil {
		return 0, f.execErr
	}
	return f.affected, nil
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.queries = append(f.queries, execCall{query: query, args: args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{data: f.rows}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	f.queries = append(f.queries, execCall{query: query, args: args})
	if f.rowErr != nil {
		return fakeRow{err: f.rowErr}
	}
	return fakeRow{vals: f.row}
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	if f.tx == nil {
		f.tx = &fakeTx{}
	}
	return f.tx, nil
}

type fakeTx struct {
	execs      []execCall
	failOnExec int
	execErr    error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(_ context.Context, query string, args ...any) (int64, error) {
	t.execs = append(t.execs, execCall{query: query, args: args})
	if t.execErr != nil && len(t.execs) == t.failOnExec {
		return 0, t.execErr
	}
	return 1, nil
}

func (t *fakeTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (t *fakeTx) QueryRow(context.Context, string, ...any) database.Row {
	return fakeRow{err: errors.New("not implemented")}
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeRows struct {
	data [][]any
	pos  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.data[r.pos-1], dest)
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.vals, dest)
}

func assign(vals []any, dest []any) error {
	if len(vals) != len(dest) {
		return fmt.Errorf("scan dest mismatch: %d values, %d dest", len(vals), len(dest))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan dest %d not a pointer", i)
		}
		sv := reflect.ValueOf(vals[i])
		if !sv.Type().AssignableTo(dv.Elem().Type()) {
			return fmt.Errorf("scan type mismatch at %d: %s into %s", i, sv.Type(), dv.Elem().Type())
		}
		dv.Elem().Set(sv)
	}
	return nil
}
