package testutils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// schema is the SQLite rendition of the production DDL. It carries the same
// NOT NULLs, checks, and indexes as the Postgres migration so package tests
// exercise the constraints production enforces.
var schema = []string{
	`CREATE TABLE categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category_name TEXT NOT NULL
	)`,
	`CREATE TABLE authors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL
	)`,
	`CREATE TABLE books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		publication_date TEXT NOT NULL,
		copies_owned INTEGER NOT NULL DEFAULT 0 CHECK (copies_owned >= 0),
		category_id INTEGER NOT NULL REFERENCES categories (id)
	)`,
	`CREATE INDEX ix_books_category_id ON books (category_id)`,
	`CREATE TABLE book_authors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		book_id INTEGER NOT NULL REFERENCES books (id),
		author_id INTEGER NOT NULL REFERENCES authors (id)
	)`,
	`CREATE UNIQUE INDEX ux_book_authors_book_id_author_id ON book_authors (book_id, author_id)`,
	`CREATE TABLE member_statuses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		status_value TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE members (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		joined_date TEXT NOT NULL DEFAULT CURRENT_DATE,
		active_status_id INTEGER NOT NULL REFERENCES member_statuses (id)
	)`,
	`CREATE TABLE loans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		book_id INTEGER NOT NULL REFERENCES books (id),
		member_id INTEGER NOT NULL REFERENCES members (id),
		loan_date TEXT NOT NULL DEFAULT CURRENT_DATE,
		returned_date TEXT
	)`,
	`CREATE INDEX ix_loans_book_id ON loans (book_id)`,
	`CREATE INDEX ix_loans_member_id ON loans (member_id)`,
	`CREATE TABLE fines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id INTEGER NOT NULL REFERENCES members (id),
		loan_id INTEGER REFERENCES loans (id),
		fine_date TEXT NOT NULL DEFAULT CURRENT_DATE,
		fine_amount REAL NOT NULL
	)`,
	`CREATE TABLE activity_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_name TEXT NOT NULL,
		action TEXT NOT NULL,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// NewDB returns an in-memory SQLite bun DB with the full schema. Production
// runs PostgreSQL; SQLite keeps package tests hermetic and fast.
func NewDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	// Each pooled connection would get its own empty :memory: database, so
	// pin everything to a single connection.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	for _, stmt := range schema {
		_, err = db.ExecContext(context.Background(), stmt)
		require.NoError(t, err)
	}

	SeedStatuses(t, db)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// SeedStatuses inserts the member status lookup rows the migrations seed in
// production: id 1 = active, id 2 = suspended.
func SeedStatuses(t *testing.T, db *bun.DB) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO member_statuses (status_value) VALUES ('active'), ('suspended')`)
	require.NoError(t, err)
}
