package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	dbutil "github.com/llehouerou/quickquotes/internal/db"
	"github.com/llehouerou/quickquotes/internal/quote"
)

// SQLite stores quotes as ordered rows in a SQLite database.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data folder: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db, path: path}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS quotes (
			position INTEGER PRIMARY KEY,
			quotation TEXT,
			author TEXT
		);
	`)
	return err
}

// Path returns the database file location.
func (s *SQLite) Path() string {
	return s.path
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load returns the stored quotes in position order, or nil when the table is empty.
func (s *SQLite) Load(ctx context.Context) ([]quote.Quote, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT quotation, author FROM quotes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	var quotes []quote.Quote
	for rows.Next() {
		var quotation, author sql.NullString
		if err := rows.Scan(&quotation, &author); err != nil {
			return nil, err
		}
		quotes = append(quotes, quote.Quote{
			Quotation: dbutil.NullStringValue(quotation),
			Author:    dbutil.NullStringValue(author),
		})
	}
	return quotes, rows.Err()
}

// Save replaces every stored row with quotes in a single transaction.
func (s *SQLite) Save(ctx context.Context, quotes []quote.Quote) error {
	return dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM quotes`); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO quotes (position, quotation, author) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, q := range quotes {
			if _, err := stmt.ExecContext(ctx, i, q.Quotation, q.Author); err != nil {
				return fmt.Errorf("insert quote %d: %w", i, err)
			}
		}
		return nil
	})
}
