package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/msomdec/searchproxy/internal/repository/sqlite/migrations"
)

// DB wraps the SQLite connection and hands out repositories bound to it.
type DB struct {
	SqlDB *sql.DB

	timeout time.Duration
}

// New opens a SQLite database at the given path and configures it for
// use. It enables WAL mode and foreign keys. Every store call issued
// through the repositories is bounded by timeout.
func New(dbPath string, timeout time.Duration) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// A single connection serializes writes, which also gives
	// read-your-write visibility to the registration flow.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db, timeout: timeout}, nil
}

// Migrate applies all unapplied schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close closes the underlying database.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns the user repository backed by this database.
func (db *DB) Users() *UserRepository {
	return NewUserRepository(db)
}
