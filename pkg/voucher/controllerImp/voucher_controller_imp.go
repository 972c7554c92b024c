package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"washline/entities"
	"washline/pkg/voucher"
)

type VoucherCtrl struct{ svc voucher.Service }

func New(svc voucher.Service) *VoucherCtrl { return &VoucherCtrl{svc} }

func (h *VoucherCtrl) Create(c echo.Context) error {
	var v entities.Voucher
	if err := c.Bind(&v); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	v.Active = true
	if err := h.svc.Create(&v); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *VoucherCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.QueryParam("active") == "true")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *VoucherCtrl) Deactivate(c echo.Context) error {
	if err := h.svc.Deactivate(c.Param("code")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
