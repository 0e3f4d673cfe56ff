// Package sqlite is a SQLite-backed store.Store implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/civicsight/phrasecloud/pkg/phrasecloud/internalerr"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/record"
	"github.com/civicsight/phrasecloud/pkg/phrasecloud/store"
)

// sqliteStore implements the Store interface using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS datasets (
	name TEXT PRIMARY KEY,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS records (
	dataset TEXT NOT NULL,
	seq INTEGER NOT NULL,
	fields TEXT NOT NULL,
	PRIMARY KEY(dataset, seq),
	FOREIGN KEY(dataset) REFERENCES datasets(name) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveDataset implements store.Store. The named dataset is replaced
// atomically.
func (s *sqliteStore) SaveDataset(ctx context.Context, name string, records []record.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO datasets(name) VALUES(?) ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return fmt.Errorf("upsert dataset %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE dataset = ?`, name); err != nil {
		return fmt.Errorf("clear dataset %q: %w", name, err)
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO records(dataset, seq, fields) VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insert.Close()

	for i, r := range records {
		fields, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
		if _, err := insert.ExecContext(ctx, name, i, string(fields)); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Dataset implements store.Store.
func (s *sqliteStore) Dataset(ctx context.Context, name string) ([]record.Record, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM datasets WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("dataset %q: %w", name, internalerr.ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT fields FROM records WHERE dataset = ? ORDER BY seq`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		var fields string
		if err := rows.Scan(&fields); err != nil {
			return nil, err
		}
		var r record.Record
		if err := json.Unmarshal([]byte(fields), &r); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListDatasets implements store.Store.
func (s *sqliteStore) ListDatasets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM datasets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
