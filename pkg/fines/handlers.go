package fines

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shelfwise/shelfwise/pkg/activity"
	"github.com/shelfwise/shelfwise/pkg/models"
)

type handler struct {
	fineService     *Service
	activityService *activity.Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	fines, err := h.fineService.ListFines(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, fines))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateFinePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	fine := &models.Fine{
		MemberID:   params.MemberID,
		LoanID:     params.LoanID,
		FineAmount: params.FineAmount,
	}

	err := h.fineService.CreateFine(ctx, fine)
	if err != nil {
		return errors.WithStack(err)
	}

	h.record(c, fmt.Sprintf("Fine added: %.2f for member %d", fine.FineAmount, fine.MemberID))

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"message": "Fine added",
		"fine":    fine,
	}))
}

func (h *handler) record(c echo.Context, action string) {
	ctx := c.Request().Context()
	if err := h.activityService.Record(ctx, activity.Actor(c), action); err != nil {
		log := logger.FromContext(ctx)
		log.Warn("failed to record activity", logger.Data{"action": action, "error": err.Error()})
	}
}
