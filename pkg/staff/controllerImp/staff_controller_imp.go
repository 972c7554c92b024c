package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"washline/pkg/staff/service"
)

type StaffCtrl struct{ v service.Verifier }

func New(v service.Verifier) *StaffCtrl { return &StaffCtrl{v} }

// Verify is the explicit identity check the POS calls before sensitive
// actions. Failure is a normal 200 with success=false, not an error.
func (h *StaffCtrl) Verify(c echo.Context) error {
	var req struct {
		Code string `json:"code"`
		PIN  string `json:"pin"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	res, err := h.v.Verify(req.Code, req.PIN)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
