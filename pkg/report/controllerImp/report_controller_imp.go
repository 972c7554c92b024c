package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"washline/pkg/report"
)

type ReportCtrl struct {
	svc report.Service
	loc *time.Location
}

func New(svc report.Service, loc *time.Location) *ReportCtrl {
	return &ReportCtrl{svc: svc, loc: loc}
}

func (h *ReportCtrl) Summary(c echo.Context) error {
	branchID, _ := strconv.Atoi(c.QueryParam("branch_id"))
	from, to := report.DayRange(c.QueryParam("from"), c.QueryParam("to"), h.loc)
	out, err := h.svc.Summarize(uint(branchID), from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
