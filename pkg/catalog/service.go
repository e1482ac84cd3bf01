package catalog

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/errcodes"
	"github.com/shelfwise/shelfwise/pkg/models"
	"github.com/uptrace/bun"
)

// BookListEntry is one row of the book listing: the catalog columns plus
// the joined category name and the author display names.
type BookListEntry struct {
	BookID          int      `json:"book_id"`
	Title           string   `json:"title"`
	PublicationDate string   `json:"publication_date"`
	CopiesOwned     int      `json:"copies_owned"`
	CategoryName    string   `json:"category_name"`
	Authors         []string `json:"authors"`
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// ListBooks returns every book joined with its category, ordered by id.
// Books whose category id does not resolve are excluded by the inner join.
// Author names are gathered per book from the junction table, in junction
// insertion order.
func (svc *Service) ListBooks(ctx context.Context) ([]*BookListEntry, error) {
	var books []*models.Book

	err := svc.db.
		NewSelect().
		Model(&books).
		ColumnExpr("b.*").
		ColumnExpr("c.category_name AS category_name").
		Join("INNER JOIN categories c ON c.id = b.category_id").
		Order("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*BookListEntry, 0, len(books))
	for _, book := range books {
		authors, err := svc.BookAuthors(ctx, book.ID)
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(authors))
		for _, a := range authors {
			names = append(names, a.FullName())
		}

		entries = append(entries, &BookListEntry{
			BookID:          book.ID,
			Title:           book.Title,
			PublicationDate: book.PublicationDate,
			CopiesOwned:     book.CopiesOwned,
			CategoryName:    book.CategoryName,
			Authors:         names,
		})
	}

	return entries, nil
}

// BookAuthors returns the authors linked to a book, in the order the
// junction rows were inserted.
func (svc *Service) BookAuthors(ctx context.Context, bookID int) ([]*models.Author, error) {
	var authors []*models.Author

	err := svc.db.
		NewSelect().
		Model(&authors).
		Join("INNER JOIN book_authors ba ON ba.author_id = a.id").
		Where("ba.book_id = ?", bookID).
		Order("ba.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return authors, nil
}

// RetrieveBook returns the raw book row by id, without category or authors.
func (svc *Service) RetrieveBook(ctx context.Context, id int) (*models.Book, error) {
	book := &models.Book{}

	err := svc.db.
		NewSelect().
		Model(book).
		Where("b.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// CreateBook inserts the book and one junction row per author id, in the
// order given, inside a single transaction.
func (svc *Service) CreateBook(ctx context.Context, book *models.Book, authorIDs []int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.
			NewInsert().
			Model(book).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return svc.insertBookAuthors(ctx, tx, book.ID, authorIDs)
	})
}

// UpdateBook overwrites all scalar fields and replaces the full author set:
// existing junction rows are deleted and the submitted set is re-inserted.
// The whole write is transactional, so a failed re-insert rolls back to the
// previous author set.
func (svc *Service) UpdateBook(ctx context.Context, book *models.Book, authorIDs []int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.
			NewUpdate().
			Model(book).
			Column("title", "category_id", "publication_date", "copies_owned").
			WherePK().
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.
			NewDelete().
			Model((*models.BookAuthor)(nil)).
			Where("book_id = ?", book.ID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		return svc.insertBookAuthors(ctx, tx, book.ID, authorIDs)
	})
}

// DeleteBook removes the book and its junction rows. Deletion is restricted
// while any loan still references the book, so circulation history never
// dangles.
func (svc *Service) DeleteBook(ctx context.Context, id int) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		count, err := tx.
			NewSelect().
			Model((*models.Loan)(nil)).
			Where("l.book_id = ?", id).
			Count(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if count > 0 {
			return errcodes.Conflict("Book has loan history and can't be deleted.")
		}

		_, err = tx.
			NewDelete().
			Model((*models.BookAuthor)(nil)).
			Where("book_id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.
			NewDelete().
			Model((*models.Book)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return errors.WithStack(err)
	})
}

// insertBookAuthors links the book to each author id in order. Duplicate
// pairs collapse against the unique index instead of failing the write, so
// a submitted id list like "2,2" yields a single junction row.
func (svc *Service) insertBookAuthors(ctx context.Context, tx bun.Tx, bookID int, authorIDs []int) error {
	for _, authorID := range authorIDs {
		link := &models.BookAuthor{
			BookID:   bookID,
			AuthorID: authorID,
		}
		_, err := tx.
			NewInsert().
			Model(link).
			On("CONFLICT DO NOTHING").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// ListCategories returns the category lookup table, ordered by id.
func (svc *Service) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category

	err := svc.db.
		NewSelect().
		Model(&categories).
		Order("c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return categories, nil
}

// ListAuthors returns all authors, ordered by id.
func (svc *Service) ListAuthors(ctx context.Context) ([]*models.Author, error) {
	var authors []*models.Author

	err := svc.db.
		NewSelect().
		Model(&authors).
		Order("a.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return authors, nil
}
