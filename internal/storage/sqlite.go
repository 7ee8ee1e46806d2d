package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// SQLite is a KV persisted in a single-table SQLite database. It is the
// durable backend for normal use; the driver is pure Go, so no cgo or
// system sqlite is needed.
type SQLite struct {
	conn *sql.DB
}

// OpenSQLite opens (creating if necessary) the database at dsn and ensures
// the schema is up to date.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLite{conn: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.conn.Close()
}

// Read returns the value stored under key, or ErrNotFound.
func (s *SQLite) Read(key string) ([]byte, error) {
	var value []byte
	row := s.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// Write stores value under key, overwriting any existing value.
func (s *SQLite) Write(key string, value []byte) error {
	_, err := s.conn.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Scan visits every pair in ascending key order.
func (s *SQLite) Scan(fn func(key string, value []byte) error) error {
	rows, err := s.conn.Query(`SELECT key, value FROM kv ORDER BY key`)
	if err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return rows.Err()
}
