package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"outgo/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// defaultOpTimeout bounds each storage operation so a hung medium surfaces
// as a storage fault instead of blocking the caller forever.
const defaultOpTimeout = 5 * time.Second

// SQLiteStore implements durable expense persistence using SQLite.
type SQLiteStore struct {
	db        *sql.DB
	dbPath    string
	opTimeout time.Duration
}

// NewSQLiteStore creates a new SQLite store instance.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Validate input
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{
		db:        db,
		dbPath:    dbPath,
		opTimeout: defaultOpTimeout,
	}, nil
}

// SetOperationTimeout overrides the per-operation timeout. Zero disables it.
func (s *SQLiteStore) SetOperationTimeout(d time.Duration) {
	s.opTimeout = d
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// opContext derives a bounded context for a single storage operation.
func (s *SQLiteStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

// faultErr wraps a medium failure in the storage fault sentinel.
func faultErr(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %v", common.ErrStorageFault, op, err)
}

var (
	sharedOnce  sync.Once
	sharedStore *SQLiteStore
	sharedErr   error
)

// Shared returns the process-wide store handle, opening and migrating the
// database exactly once. Concurrent early callers join the same physical
// open; later callers get the memoized result. The path is fixed by the
// first call and the handle lives for the rest of the process.
func Shared(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	sharedOnce.Do(func() {
		store, err := NewSQLiteStore(dbPath)
		if err != nil {
			sharedErr = err
			return
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			sharedErr = fmt.Errorf("failed to run migrations: %w", err)
			return
		}
		sharedStore = store
	})
	return sharedStore, sharedErr
}
