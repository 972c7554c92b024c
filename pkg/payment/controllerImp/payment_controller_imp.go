package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"washline/pkg/order"
	"washline/pkg/payment/service"
)

type PaymentCtrl struct{ svc service.PaymentService }

func New(svc service.PaymentService) *PaymentCtrl { return &PaymentCtrl{svc} }

func (h *PaymentCtrl) Pay(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req struct {
		Version     int    `json:"version"`
		Method      string `json:"method"`
		VoucherCode string `json:"voucher_code"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Method == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "method is required"})
	}
	staffID, _ := c.Get("staff_id").(uint)
	tx, err := h.svc.Pay(uint(id), req.Version, staffID, req.Method, req.VoucherCode)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		case errors.Is(err, service.ErrAlreadyPaid), errors.Is(err, order.ErrVersionConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrNotPriced), errors.Is(err, service.ErrVoucherInvalid):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, tx)
}
