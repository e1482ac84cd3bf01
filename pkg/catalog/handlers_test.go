package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shelfwise/shelfwise/pkg/activity"
	"github.com/shelfwise/shelfwise/pkg/binder"
	"github.com/shelfwise/shelfwise/pkg/errcodes"
	"github.com/shelfwise/shelfwise/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func setupTestHandler(t *testing.T, db *bun.DB) (*handler, *echo.Echo) {
	t.Helper()

	h := &handler{
		catalogService:  NewService(db),
		activityService: activity.NewService(db),
	}

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b

	return h, e
}

func TestHandlerCreate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h, e := setupTestHandler(t, db)
	ctx := context.Background()

	category := createCategory(t, db, "Fiction")
	a1 := createAuthor(t, db, "Ursula", "Le Guin")
	a2 := createAuthor(t, db, "Terry", "Pratchett")

	body := `{"title":"T","category_id":` + itoa(category.ID) +
		`,"publication_date":"2024-01-01","copies_owned":3,"author_ids":"` +
		itoa(a1.ID) + `,` + itoa(a2.ID) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.create(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string       `json:"message"`
		Book    *models.Book `json:"book"`
	}
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Book created", resp.Message)
	require.NotNil(t, resp.Book)
	assert.NotZero(t, resp.Book.ID)

	// The create is audited.
	entries, err := h.activityService.List(ctx, activity.ListActivitiesOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Book created: T", entries[0].Action)
	assert.Equal(t, "system", entries[0].UserName)
}

func TestHandlerCreateMissingTitle(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h, e := setupTestHandler(t, db)

	body := `{"category_id":1,"publication_date":"2024-01-01","copies_owned":1,"author_ids":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.create(c)
	assert.ErrorIs(t, err, errcodes.ValidationError(`"title" is required`))
}

func TestHandlerRetrieveNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h, e := setupTestHandler(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/books/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/books/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.retrieve(c)
	assert.ErrorIs(t, err, errcodes.NotFound("Book"))
}

func TestHandlerUpdate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h, e := setupTestHandler(t, db)
	ctx := context.Background()

	category := createCategory(t, db, "Fiction")
	a1 := createAuthor(t, db, "One", "Author")
	a2 := createAuthor(t, db, "Two", "Author")

	book := &models.Book{Title: "Old", CategoryID: category.ID, PublicationDate: "2020-01-01", CopiesOwned: 1}
	err := h.catalogService.CreateBook(ctx, book, []int{a1.ID})
	require.NoError(t, err)

	body := `{"title":"New","category_id":` + itoa(category.ID) +
		`,"publication_date":"2020-01-01","copies_owned":2,"author_ids":"` + itoa(a2.ID) + `"}`
	req := httptest.NewRequest(http.MethodPut, "/api/books/"+itoa(book.ID), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/books/:id")
	c.SetParamNames("id")
	c.SetParamValues(itoa(book.ID))

	err = h.update(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	entries, err := h.catalogService.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "New", entries[0].Title)
	assert.Equal(t, 2, entries[0].CopiesOwned)
	assert.Equal(t, []string{"Two Author"}, entries[0].Authors)
}

func TestHandlerDelete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h, e := setupTestHandler(t, db)
	ctx := context.Background()

	category := createCategory(t, db, "Fiction")
	book := &models.Book{Title: "Gone", CategoryID: category.ID, PublicationDate: "2020-01-01", CopiesOwned: 1}
	err := h.catalogService.CreateBook(ctx, book, nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/books/"+itoa(book.ID), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/books/:id")
	c.SetParamNames("id")
	c.SetParamValues(itoa(book.ID))

	err = h.deleteBook(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	_, err = h.catalogService.RetrieveBook(ctx, book.ID)
	assert.ErrorIs(t, err, errcodes.NotFound("Book"))
}
