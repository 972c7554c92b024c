package service

import (
	"washline/entities"
	"washline/pkg/order"
	"washline/pkg/pricing"
)

type PlaceOrderRequest struct {
	BranchID        uint                `json:"branch_id"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerName    string              `json:"customer_name"`
	Hall            string              `json:"hall"`
	Room            string              `json:"room"`
	Notes           string              `json:"notes"`
	ServiceType     pricing.ServiceType `json:"service_type"`
	HasWhites       bool                `json:"has_whites"`
	WashSeparately  bool                `json:"wash_separately"`
	EstimatedWeight float64             `json:"estimated_weight"` // for the quote only, never persisted
	WantsDelivery   bool                `json:"wants_delivery"`
}

type CheckInRequest struct {
	Weight        float64              `json:"weight"`
	BagCardNumber string               `json:"bag_card_number"`
	Items         []entities.OrderItem `json:"items"`
}

type WalkInRequest struct {
	PlaceOrderRequest
	CheckInRequest
}

type OrderService interface {
	// PlaceOnline creates a pending_dropoff order and returns a price
	// estimate alongside it. Nothing about the estimate is persisted:
	// weight, loads and price stay unset until check-in.
	PlaceOnline(req PlaceOrderRequest) (*entities.Order, pricing.Quote, error)
	// PlaceWalkIn creates and prices an order in one step; the order is
	// born checked_in.
	PlaceWalkIn(req WalkInRequest) (*entities.Order, error)
	// CheckIn converts a pending drop-off into a priced order. Status,
	// bag card, weight, loads, price and items land in one write.
	CheckIn(orderID uint, expectedVersion int, req CheckInRequest) (*entities.Order, error)
	// Advance moves an order to target, or to the next stage when
	// target is empty. Illegal transitions are rejected.
	Advance(orderID uint, expectedVersion int, target order.Status) (*entities.Order, error)
	GetByID(id uint) (*entities.Order, error)
	GetByCode(code string) (*entities.Order, error)
	GetByPhone(phone string) (*entities.Order, error)
	// ListView serves the pending|active|ready|completed projections.
	ListView(branchID uint, view string) ([]entities.Order, error)
}
