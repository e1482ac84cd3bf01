package catalog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shelfwise/shelfwise/pkg/activity"
	"github.com/shelfwise/shelfwise/pkg/errcodes"
	"github.com/shelfwise/shelfwise/pkg/models"
)

type handler struct {
	catalogService  *Service
	activityService *activity.Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := h.catalogService.ListBooks(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, entries))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := BookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book := &models.Book{
		Title:           params.Title,
		CategoryID:      params.CategoryID,
		PublicationDate: params.PublicationDate,
		CopiesOwned:     params.CopiesOwned,
	}

	err := h.catalogService.CreateBook(ctx, book, ParseAuthorIDs(params.AuthorIDs))
	if err != nil {
		return errors.WithStack(err)
	}

	h.record(c, "Book created: "+book.Title)

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"message": "Book created",
		"book":    book,
	}))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.catalogService.RetrieveBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	params := BookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.catalogService.RetrieveBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	book.Title = params.Title
	book.CategoryID = params.CategoryID
	book.PublicationDate = params.PublicationDate
	book.CopiesOwned = params.CopiesOwned

	err = h.catalogService.UpdateBook(ctx, book, ParseAuthorIDs(params.AuthorIDs))
	if err != nil {
		return errors.WithStack(err)
	}

	h.record(c, "Book updated: "+book.Title)

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"message": "Book updated successfully",
	}))
}

func (h *handler) deleteBook(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.catalogService.RetrieveBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	err = h.catalogService.DeleteBook(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	h.record(c, "Book deleted: "+book.Title)

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"message": "Book deleted successfully",
	}))
}

func (h *handler) categories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.catalogService.ListCategories(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, categories))
}

func (h *handler) authors(c echo.Context) error {
	ctx := c.Request().Context()

	authors, err := h.catalogService.ListAuthors(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, authors))
}

// record appends an audit entry; a failed append is logged but never fails
// the request that triggered it.
func (h *handler) record(c echo.Context, action string) {
	ctx := c.Request().Context()
	if err := h.activityService.Record(ctx, activity.Actor(c), action); err != nil {
		log := logger.FromContext(ctx)
		log.Warn("failed to record activity", logger.Data{"action": action, "error": err.Error()})
	}
}
