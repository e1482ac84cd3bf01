package activity

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the activity feed routes on the API group.
func RegisterRoutes(g *echo.Group, db *bun.DB) {
	h := &handler{
		activityService: NewService(db),
	}

	g.GET("/activities", h.list)
}
