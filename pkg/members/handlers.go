package members

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shelfwise/shelfwise/pkg/activity"
	"github.com/shelfwise/shelfwise/pkg/models"
)

type handler struct {
	memberService   *Service
	activityService *activity.Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	members, err := h.memberService.ListMembers(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, members))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateMemberPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	member := &models.Member{
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		ActiveStatusID: params.ActiveStatusID,
	}

	err := h.memberService.CreateMember(ctx, member)
	if err != nil {
		return errors.WithStack(err)
	}

	h.record(c, "Member added: "+member.FirstName+" "+member.LastName)

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"message": "Member added",
		"member":  member,
	}))
}

func (h *handler) statuses(c echo.Context) error {
	ctx := c.Request().Context()

	statuses, err := h.memberService.ListStatuses(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, statuses))
}

func (h *handler) record(c echo.Context, action string) {
	ctx := c.Request().Context()
	if err := h.activityService.Record(ctx, activity.Actor(c), action); err != nil {
		log := logger.FromContext(ctx)
		log.Warn("failed to record activity", logger.Data{"action": action, "error": err.Error()})
	}
}
