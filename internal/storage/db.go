package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/jobkeeper/internal/dbx"
	"github.com/dmitrijs2005/jobkeeper/internal/migrations"
	"github.com/dmitrijs2005/jobkeeper/internal/repositories/slots"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Database is the opened local database.
type Database struct {
	db    *sql.DB
	slots *slots.SQLiteRepository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Open opens (creating if needed) the database at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*Database, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// A single connection serializes writers and keeps ":memory:" databases
	// shared between calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Database{db: db, slots: slots.NewSQLiteRepository(db)}, nil
}

// Slots returns the repository bound to the database itself.
func (d *Database) Slots() slots.Repository {
	return d.slots
}

// InTx runs fn with a slot repository bound to a transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (d *Database) InTx(ctx context.Context, fn func(ctx context.Context, repo slots.Repository) error) error {
	return dbx.WithTx(ctx, d.db, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, slots.NewSQLiteRepository(tx))
	})
}

func (d *Database) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.db.Close()
}
