// Package storage persists customers, milk transactions and payments in
// SQLite behind a single long-lived connection pool. The legacy
// open-one-statement-close pattern is replaced by one *sql.DB owned by the
// store for its whole lifetime.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"dairyledger/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath and brings the
// schema up to date.
func Open(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// rangeClause appends inclusive date bounds to a query. Either bound may be
// empty (unbounded). A start after the end simply matches nothing.
func rangeClause(query string, args []any, from, to core.Date) (string, []any) {
	if !from.IsEmpty() {
		query += " AND date >= ?"
		args = append(args, from.String())
	}
	if !to.IsEmpty() {
		query += " AND date <= ?"
		args = append(args, to.String())
	}
	return query, args
}

func scanDate(s string) (core.Date, error) {
	d, err := core.ParseDate(s)
	if err != nil {
		return core.Date{}, fmt.Errorf("stored date %q: %w", s, err)
	}
	return d, nil
}
