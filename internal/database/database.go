package database

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// DefaultBusyTimeout is how long SQLite waits on a locked file before failing.
const DefaultBusyTimeout = 5 * time.Second

// Options tunes how the database file is opened.
type Options struct {
	BusyTimeout time.Duration
}

// DB owns the single connection to the roster database file.
// The connection is opened on first Acquire and kept until Release.
type DB struct {
	path string
	opts Options

	mu   sync.Mutex
	conn *sqlx.DB
}

// New creates a connection manager for path. Nothing is opened until Acquire.
func New(path string, opts Options) *DB {
	if opts.BusyTimeout <= 0 {
		opts.BusyTimeout = DefaultBusyTimeout
	}
	return &DB{
		path: path,
		opts: opts,
	}
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// IsOpen reports whether a connection is currently cached.
func (db *DB) IsOpen() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.conn != nil
}

// Acquire returns the cached connection, opening it when absent or
// previously released.
func (db *DB) Acquire() (*sqlx.DB, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.conn != nil {
		return db.conn, nil
	}

	conn, err := sqlx.Open(driverName, db.dsn())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrStorageUnavailable, db.path, err)
	}

	// One connection for the process lifetime
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: failed to ping %s: %v", ErrStorageUnavailable, db.path, err)
	}

	log.Debug().Str("path", db.path).Msg("Database connection established")

	db.conn = conn
	return conn, nil
}

// Release closes the cached connection. Calling it with nothing open is a no-op.
func (db *DB) Release() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.conn == nil {
		return nil
	}

	err := db.conn.Close()
	db.conn = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Debug().Str("path", db.path).Msg("Database connection closed")
	return nil
}

// dsn builds a file: URI for the driver. The path is percent-escaped so
// '#', '?' and '%' in file names are not read as URI syntax.
func (db *DB) dsn() string {
	u := &url.URL{
		Scheme:   "file",
		OmitHost: true,
		Path:     db.path,
		RawQuery: fmt.Sprintf("_pragma=busy_timeout(%d)", db.opts.BusyTimeout.Milliseconds()),
	}
	return u.String()
}
