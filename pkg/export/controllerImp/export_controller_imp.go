package controllerImp

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"washline/pkg/export"
	ordersvc "washline/pkg/order/service"
)

type ExportCtrl struct{ orders ordersvc.OrderService }

func New(orders ordersvc.OrderService) *ExportCtrl { return &ExportCtrl{orders} }

// Orders streams the filtered order list as csv (default) or xlsx.
func (h *ExportCtrl) Orders(c echo.Context) error {
	branchID, _ := strconv.Atoi(c.QueryParam("branch_id"))
	view := c.QueryParam("view")
	list, err := h.orders.ListView(uint(branchID), view)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	format := c.QueryParam("format")
	if format == "" {
		format = "csv"
	}
	name := export.Filename(view, format, time.Now())

	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := export.CSV(&buf, list); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
		return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
	case "xlsx":
		x, err := export.XLSX(list)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		var buf bytes.Buffer
		if err := x.Write(&buf); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
		return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "format must be csv or xlsx"})
}
