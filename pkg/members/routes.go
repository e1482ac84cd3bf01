package members

import (
	"github.com/labstack/echo/v4"
	"github.com/shelfwise/shelfwise/pkg/activity"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the member routes on the API group.
func RegisterRoutes(g *echo.Group, db *bun.DB) {
	h := &handler{
		memberService:   NewService(db),
		activityService: activity.NewService(db),
	}

	g.GET("/members", h.list)
	g.POST("/members", h.create)
	g.GET("/members/statuses", h.statuses)
}
