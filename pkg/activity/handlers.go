package activity

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	activityService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListActivitiesQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	activities, err := h.activityService.List(ctx, ListActivitiesOptions{
		Limit: params.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, activities))
}

// Actor names the user an audit entry is attributed to. There is no
// authentication layer; the frontend passes its display name through a
// header and anything else falls back to "system".
func Actor(c echo.Context) string {
	if name := c.Request().Header.Get("X-User-Name"); name != "" {
		return name
	}
	return "system"
}
