package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE categories (
				id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
				category_name TEXT NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE authors (
				id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE books (
				id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
				title TEXT NOT NULL,
				publication_date DATE NOT NULL,
				copies_owned INTEGER NOT NULL DEFAULT 0 CHECK (copies_owned >= 0),
				category_id INTEGER NOT NULL REFERENCES categories (id)
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books_category_id ON books (category_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE book_authors (
				id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
				book_id INTEGER NOT NULL REFERENCES books (id),
				author_id INTEGER NOT NULL REFERENCES authors (id)
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_book_authors_book_id_author_id ON book_authors (book_id, author_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE member_statuses (
				id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
				status_value TEXT NOT NULL UNIQUE
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE members (
				id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				joined_date DATE NOT NULL DEFAULT CURRENT_DATE,
				active_status_id INTEGER NOT NULL REFERENCES member_statuses (id)
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE loans (
				id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
				book_id INTEGER NOT NULL REFERENCES books (id),
				member_id INTEGER NOT NULL REFERENCES members (id),
				loan_date DATE NOT NULL DEFAULT CURRENT_DATE,
				returned_date DATE
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_loans_book_id ON loans (book_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_loans_member_id ON loans (member_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE fines (
				id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
				member_id INTEGER NOT NULL REFERENCES members (id),
				loan_id INTEGER REFERENCES loans (id),
				fine_date DATE NOT NULL DEFAULT CURRENT_DATE,
				fine_amount NUMERIC(10, 2) NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_fines_member_id ON fines (member_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE activity_logs (
				id INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
				user_name TEXT NOT NULL,
				action TEXT NOT NULL,
				timestamp TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`INSERT INTO member_statuses (status_value) VALUES ('active'), ('suspended')`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		for _, table := range []string{
			"activity_logs",
			"fines",
			"loans",
			"members",
			"member_statuses",
			"book_authors",
			"books",
			"authors",
			"categories",
		} {
			_, err := db.Exec("DROP TABLE IF EXISTS " + table)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
