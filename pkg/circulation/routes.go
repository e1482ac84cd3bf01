package circulation

import (
	"github.com/labstack/echo/v4"
	"github.com/shelfwise/shelfwise/pkg/activity"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the loan routes on the API group.
func RegisterRoutes(g *echo.Group, db *bun.DB) {
	h := &handler{
		loanService:     NewService(db),
		activityService: activity.NewService(db),
	}

	g.GET("/loans", h.list)
	g.POST("/loans", h.issue)
	g.PUT("/loans/:id", h.returnLoan)
}
