package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"washline/entities"
	"washline/pkg/branch"
)

type BranchCtrl struct{ svc branch.Service }

func New(svc branch.Service) *BranchCtrl { return &BranchCtrl{svc} }

func (h *BranchCtrl) Create(c echo.Context) error {
	var b entities.Branch
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if err := h.svc.Create(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BranchCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
