package seeder

import (
	"context"
	"database/sql"
	"errors"

	"project-recommender/internal/database"
)

var errFakeDB = errors.New("fake db")

type fakeDB struct{}

func (fakeDB) Ping(context.Context) error { return nil }
func (fakeDB) Close() error               { return nil }
func (fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errFakeDB
}
func (fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errFakeDB
}
func (fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (fakeDB) Begin(context.Context) (database.Tx, error)            { return nil, errFakeDB }
func (fakeDB) SQLDB() *sql.DB                                        { return nil }
