package models

import (
	"github.com/uptrace/bun"
)

// Category is an external lookup table referenced by books. Rows are
// managed outside the API surface.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID           int    `bun:"id,pk,autoincrement" json:"id"`
	CategoryName string `bun:",nullzero" json:"category_name"`
}

type Author struct {
	bun.BaseModel `bun:"table:authors,alias:a"`

	ID        int    `bun:"id,pk,autoincrement" json:"id"`
	FirstName string `bun:",nullzero" json:"first_name"`
	LastName  string `bun:",nullzero" json:"last_name"`
}

// FullName returns the "First Last" display string used in book listings.
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID              int       `bun:"id,pk,autoincrement" json:"id"`
	Title           string    `bun:",nullzero" json:"title"`
	PublicationDate string    `bun:",nullzero" json:"publication_date"`
	CopiesOwned     int       `json:"copies_owned"`
	CategoryID      int       `bun:",nullzero" json:"category_id"`
	Category        *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`

	CategoryName string `bun:",scanonly" json:"category_name,omitempty"`
}

// BookAuthor is the junction between books and authors. The (book_id,
// author_id) pair is unique at the schema level.
type BookAuthor struct {
	bun.BaseModel `bun:"table:book_authors,alias:ba"`

	ID       int `bun:"id,pk,autoincrement" json:"id"`
	BookID   int `bun:",nullzero" json:"book_id"`
	AuthorID int `bun:",nullzero" json:"author_id"`
}
