package circulation

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shelfwise/shelfwise/pkg/activity"
	"github.com/shelfwise/shelfwise/pkg/errcodes"
)

type handler struct {
	loanService     *Service
	activityService *activity.Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	loans, err := h.loanService.ListLoans(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, loans))
}

func (h *handler) issue(c echo.Context) error {
	ctx := c.Request().Context()

	params := IssueLoanPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	loan, err := h.loanService.IssueLoan(ctx, params.BookID, params.MemberID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.record(c, fmt.Sprintf("Loan issued: book %d to member %d", loan.BookID, loan.MemberID))

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"message": "Book issued",
		"loan":    loan,
	}))
}

func (h *handler) returnLoan(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Loan")
	}

	loan, err := h.loanService.ReturnLoan(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	h.record(c, fmt.Sprintf("Loan returned: loan %d", loan.ID))

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"message": "Book returned",
		"loan":    loan,
	}))
}

func (h *handler) record(c echo.Context, action string) {
	ctx := c.Request().Context()
	if err := h.activityService.Record(ctx, activity.Actor(c), action); err != nil {
		log := logger.FromContext(ctx)
		log.Warn("failed to record activity", logger.Data{"action": action, "error": err.Error()})
	}
}
