package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // register postgres dialect
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // register sqlite3 dialect
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

type Repository struct {
	DB            *sql.DB
	GoquDBWrapper *goqu.Database
	Dialect       string
}

func NewRepository(db *sql.DB, dialect string) *Repository {
	return &Repository{
		DB:            db,
		GoquDBWrapper: goqu.New(dialect, db),
		Dialect:       dialect,
	}
}

// WithTransaction commits when fn returns nil and rolls back on error or panic.
func WithTransaction(ctx context.Context, db *goqu.Database, fn func(tx *goqu.TxDatabase) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return
}

// InsertReturningID runs insert and reports the generated id: RETURNING on
// Postgres, the driver's last insert id on SQLite.
func (r *Repository) InsertReturningID(ctx context.Context, insert *goqu.InsertDataset) (int64, error) {
	if r.Dialect == DialectPostgres {
		var id int64
		if _, err := insert.Returning("id").Executor().ScanValContext(ctx, &id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := insert.Executor().ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
