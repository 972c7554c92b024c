package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"washline/pkg/attendance"
)

type AttendanceCtrl struct{ svc attendance.Service }

func New(svc attendance.Service) *AttendanceCtrl { return &AttendanceCtrl{svc} }

func (h *AttendanceCtrl) ClockIn(c echo.Context) error  { return h.clock(c, "clock_in") }
func (h *AttendanceCtrl) ClockOut(c echo.Context) error { return h.clock(c, "clock_out") }

func (h *AttendanceCtrl) clock(c echo.Context, action string) error {
	staffID, _ := c.Get("staff_id").(uint)
	rec, err := h.svc.Clock(staffID, action)
	if err != nil {
		if errors.Is(err, attendance.ErrDoubleClock) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *AttendanceCtrl) List(c echo.Context) error {
	staffID, _ := c.Get("staff_id").(uint)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.svc.ListByStaff(staffID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
