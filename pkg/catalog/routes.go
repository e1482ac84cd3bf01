package catalog

import (
	"github.com/labstack/echo/v4"
	"github.com/shelfwise/shelfwise/pkg/activity"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the catalog routes on the API group.
func RegisterRoutes(g *echo.Group, db *bun.DB) {
	h := &handler{
		catalogService:  NewService(db),
		activityService: activity.NewService(db),
	}

	g.GET("/books", h.list)
	g.POST("/books", h.create)
	g.GET("/books/:id", h.retrieve)
	g.PUT("/books/:id", h.update)
	g.DELETE("/books/:id", h.deleteBook)

	g.GET("/categories", h.categories)
	g.GET("/authors", h.authors)
}
