package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/shelfwise/shelfwise/pkg/activity"
	"github.com/shelfwise/shelfwise/pkg/binder"
	"github.com/shelfwise/shelfwise/pkg/catalog"
	"github.com/shelfwise/shelfwise/pkg/circulation"
	"github.com/shelfwise/shelfwise/pkg/config"
	"github.com/shelfwise/shelfwise/pkg/errcodes"
	"github.com/shelfwise/shelfwise/pkg/fines"
	"github.com/shelfwise/shelfwise/pkg/members"
	"github.com/uptrace/bun"
)

// New builds the HTTP server with the full route table. Routes are
// registered explicitly here; there is no process-wide router.
func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())
	e.Use(requestTimeout(cfg.RequestTimeout))

	health.RegisterRoutes(e)

	api := e.Group("/api")
	catalog.RegisterRoutes(api, db)
	circulation.RegisterRoutes(api, db)
	fines.RegisterRoutes(api, db)
	members.RegisterRoutes(api, db)
	activity.RegisterRoutes(api, db)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

// requestTimeout bounds each request's context so a stalled database round
// trip surfaces as a request_timeout error instead of hanging the client.
func requestTimeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if d <= 0 {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
