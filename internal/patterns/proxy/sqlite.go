// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     proxy
// Description: SQLite backed real subject for the caching proxy
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package proxy

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"io"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

// SQLiteBookDatabase serves book information from a book_info table. Titles
// missing from the table get the generated description, which is stored for
// the next lookup.
type SQLiteBookDatabase struct {
	db  *sql.DB
	out io.Writer
}

// OpenSQLiteBookDatabase opens dsn (e.g. "file:bookinfo?mode=memory&cache=shared")
// and creates the schema
func OpenSQLiteBookDatabase(ctx context.Context, dsn string, w io.Writer) (*SQLiteBookDatabase, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database").
			WithCode(errors.CodeDatabaseError).
			WithOperation("proxy.OpenSQLiteBookDatabase")
	}
	// in-memory databases live as long as their single connection
	db.SetMaxOpenConns(1)

	store := &SQLiteBookDatabase{db: db, out: w}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to initialize schema").
			WithCode(errors.CodeDatabaseError).
			WithOperation("proxy.OpenSQLiteBookDatabase")
	}
	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteBookDatabase) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS book_info (
		title TEXT PRIMARY KEY,
		info TEXT NOT NULL
	);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Put stores info for title, replacing an existing row
func (s *SQLiteBookDatabase) Put(ctx context.Context, title, info string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO book_info (title, info) VALUES (?, ?)
		ON CONFLICT(title) DO UPDATE SET info = excluded.info
	`, title, info)
	if err != nil {
		return errors.Wrap(err, "failed to store book info").
			WithCode(errors.CodeDatabaseError).
			WithOperation("proxy.SQLiteBookDatabase.Put").
			WithDetail("title", title)
	}
	return nil
}

// BookInfo implements BookDatabase
func (s *SQLiteBookDatabase) BookInfo(ctx context.Context, title string) (string, error) {
	fmt.Fprintf(s.out, "Fetching real info for: %s\n", title)

	var info string
	err := s.db.QueryRowContext(ctx, `SELECT info FROM book_info WHERE title = ?`, title).Scan(&info)
	switch {
	case err == nil:
		return info, nil
	case stderrors.Is(err, sql.ErrNoRows):
		info = generatedInfo(title)
		if err := s.Put(ctx, title, info); err != nil {
			return "", err
		}
		return info, nil
	default:
		return "", errors.Wrap(err, "failed to query book info").
			WithCode(errors.CodeDatabaseError).
			WithOperation("proxy.SQLiteBookDatabase.BookInfo").
			WithDetail("title", title)
	}
}

// Count returns the number of stored rows
func (s *SQLiteBookDatabase) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM book_info`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "failed to count book info").WithCode(errors.CodeDatabaseError)
	}
	return n, nil
}

// Close closes the database
func (s *SQLiteBookDatabase) Close() error {
	return s.db.Close()
}
