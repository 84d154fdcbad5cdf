package cache

import (
	"fmt"
	"time"

	"crawshaw.io/sqlite"
)

// SQLiteStore is an implementation of Store that uses SQLite.
type SQLiteStore struct {
	conn   *sqlite.Conn
	dbPath string
}

// NewSQLiteStore creates a new SQLiteStore instance.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// Initialize initializes the store with the given database path.
func (s *SQLiteStore) Initialize(dbPath string) error {
	s.dbPath = dbPath

	// Open the SQLite database
	conn, err := sqlite.OpenConn(dbPath, sqlite.SQLITE_OPEN_CREATE|sqlite.SQLITE_OPEN_READWRITE)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	s.conn = conn

	// Create the table if it doesn't exist
	if err := s.createTable(); err != nil {
		s.conn.Close()
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

// createTable creates the response_cache table if it doesn't exist.
func (s *SQLiteStore) createTable() error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS response_cache (
		key TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		stored_at INTEGER NOT NULL,
		expires_at INTEGER NOT NULL
	);`

	stmt, err := s.conn.Prepare(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare create table statement: %w", err)
	}
	defer stmt.Reset()

	if _, err := stmt.Step(); err != nil {
		return fmt.Errorf("failed to execute create table statement: %w", err)
	}

	return nil
}

// Close closes the store and releases any resources.
func (s *SQLiteStore) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Get returns the cached body for the key, or ErrMiss when the entry is
// absent or expired.
func (s *SQLiteStore) Get(key string, now time.Time) ([]byte, error) {
	selectSQL := `
	SELECT body, expires_at FROM response_cache WHERE key = ?;`

	stmt, err := s.conn.Prepare(selectSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Reset()

	stmt.BindText(1, key)

	hasRow, err := stmt.Step()
	if err != nil {
		return nil, fmt.Errorf("failed to execute select statement: %w", err)
	}
	if !hasRow {
		return nil, ErrMiss
	}

	expiresAt := stmt.ColumnInt64(1)
	if now.Unix() >= expiresAt {
		return nil, ErrMiss
	}

	bodyLen := stmt.ColumnLen(0)
	body := make([]byte, bodyLen)
	stmt.ColumnBytes(0, body)

	return body, nil
}

// Put stores or replaces the body for the key with the given TTL.
func (s *SQLiteStore) Put(key string, body []byte, now time.Time, ttl time.Duration) error {
	insertSQL := `
	INSERT OR REPLACE INTO response_cache (key, body, stored_at, expires_at)
	VALUES (?, ?, ?, ?);`

	stmt, err := s.conn.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Reset()

	// Bind parameters - indices in sqlite are 1-based
	stmt.BindText(1, key)
	stmt.BindBytes(2, body)
	stmt.BindInt64(3, now.Unix())
	stmt.BindInt64(4, now.Add(ttl).Unix())

	if _, err := stmt.Step(); err != nil {
		return fmt.Errorf("failed to insert cache entry: %w", err)
	}

	return nil
}

// Count reports the number of entries currently stored.
func (s *SQLiteStore) Count() (int, error) {
	countSQL := `SELECT COUNT(*) FROM response_cache;`

	stmt, err := s.conn.Prepare(countSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare count statement: %w", err)
	}
	defer stmt.Reset()

	hasRow, err := stmt.Step()
	if err != nil {
		return 0, fmt.Errorf("failed to execute count statement: %w", err)
	}
	if !hasRow {
		return 0, nil
	}

	return int(stmt.ColumnInt64(0)), nil
}

// Purge removes entries that expired before now.
func (s *SQLiteStore) Purge(now time.Time) (int, error) {
	deleteSQL := `DELETE FROM response_cache WHERE expires_at <= ?;`

	stmt, err := s.conn.Prepare(deleteSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare purge statement: %w", err)
	}
	defer stmt.Reset()

	stmt.BindInt64(1, now.Unix())

	if _, err := stmt.Step(); err != nil {
		return 0, fmt.Errorf("failed to execute purge statement: %w", err)
	}

	return s.conn.Changes(), nil
}

// Clear removes all entries from the cache.
func (s *SQLiteStore) Clear() (int, error) {
	deleteSQL := `DELETE FROM response_cache;`

	stmt, err := s.conn.Prepare(deleteSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare clear statement: %w", err)
	}
	defer stmt.Reset()

	if _, err := stmt.Step(); err != nil {
		return 0, fmt.Errorf("failed to execute clear statement: %w", err)
	}

	return s.conn.Changes(), nil
}
