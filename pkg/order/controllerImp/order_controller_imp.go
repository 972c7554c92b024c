package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"washline/pkg/messaging"
	"washline/pkg/order"
	"washline/pkg/order/service"
	"washline/pkg/pricing"
)

type OrderCtrl struct {
	svc      service.OrderService
	rates    *pricing.RateTable
	notifier *messaging.Notifier
}

func New(svc service.OrderService, rates *pricing.RateTable, notifier *messaging.Notifier) *OrderCtrl {
	return &OrderCtrl{svc: svc, rates: rates, notifier: notifier}
}

// Place takes an online order from the customer site.
func (h *OrderCtrl) Place(c echo.Context) error {
	var req service.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.CustomerPhone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_phone is required"})
	}
	if !req.ServiceType.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_type must be one of: wash_only, wash_and_dry, dry_only"})
	}
	o, quote, err := h.svc.PlaceOnline(req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"order": o, "estimate": quote})
}

// Quote prices a prospective order without creating anything.
func (h *OrderCtrl) Quote(c echo.Context) error {
	var req struct {
		ServiceType     pricing.ServiceType `json:"service_type"`
		Weight          float64             `json:"weight"`
		IncludeDelivery bool                `json:"include_delivery"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if !req.ServiceType.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_type must be one of: wash_only, wash_and_dry, dry_only"})
	}
	return c.JSON(http.StatusOK, h.rates.Calculate(req.ServiceType, req.Weight, req.IncludeDelivery))
}

// Track is the customer lookup by code or phone.
func (h *OrderCtrl) Track(c echo.Context) error {
	if code := c.QueryParam("code"); code != "" {
		o, err := h.svc.GetByCode(code)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, o)
	}
	if phone := c.QueryParam("phone"); phone != "" {
		o, err := h.svc.GetByPhone(phone)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, o)
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "code or phone query parameter required"})
}

func (h *OrderCtrl) List(c echo.Context) error {
	branchID, _ := strconv.Atoi(c.QueryParam("branch_id"))
	out, err := h.svc.ListView(uint(branchID), c.QueryParam("view"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// WalkIn creates and checks in a counter order in one request.
func (h *OrderCtrl) WalkIn(c echo.Context) error {
	var req service.WalkInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.CustomerPhone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_phone is required"})
	}
	if !req.ServiceType.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service_type must be one of: wash_only, wash_and_dry, dry_only"})
	}
	if req.Weight <= 0 || req.BagCardNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "weight and bag_card_number are required"})
	}
	o, err := h.svc.PlaceWalkIn(req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderCtrl) CheckIn(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req struct {
		Version int `json:"version"`
		service.CheckInRequest
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if req.Weight <= 0 || req.BagCardNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "weight and bag_card_number are required"})
	}
	o, err := h.svc.CheckIn(id, req.Version, req.CheckInRequest)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderCtrl) Advance(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req struct {
		Version int    `json:"version"`
		To      string `json:"to"` // empty = next stage
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	o, err := h.svc.Advance(id, req.Version, order.Status(req.To))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

// Notify composes the status text and hands it to the message channel.
func (h *OrderCtrl) Notify(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	o, err := h.svc.GetByID(id)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.notifier.NotifyStatus(o); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "sent", "text": messaging.StatusMessage(o)})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
	case errors.Is(err, order.ErrVersionConflict),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrAlreadyCheckedIn):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
