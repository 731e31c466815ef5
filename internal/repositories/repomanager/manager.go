// Package repomanager selects the storage backend and hands out repositories
// bound to a DBTX (a pooled connection or a transaction).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"securechat/internal/dbx"
	"securechat/internal/repositories/accounts"
	"securechat/internal/repositories/messages"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Messages(db dbx.DBTX) messages.Repository
}

// Drivers accepted in the config. DriverPostgres maps to the pgx stdlib
// driver, DriverSQLite to the embedded modernc driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// New returns the manager for the configured driver name.
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverPostgres:
		return &PostgresRepositoryManager{}, nil
	case DriverSQLite:
		return &SQLiteRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unknown database driver: %q", driver)
	}
}

// Open opens the database for the configured driver and runs migrations.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	m, err := New(driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return db, m, nil
}
