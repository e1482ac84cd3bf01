package fines

import (
	"github.com/labstack/echo/v4"
	"github.com/shelfwise/shelfwise/pkg/activity"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the fine routes on the API group.
func RegisterRoutes(g *echo.Group, db *bun.DB) {
	h := &handler{
		fineService:     NewService(db),
		activityService: activity.NewService(db),
	}

	g.GET("/fines", h.list)
	g.POST("/fines", h.create)
}
