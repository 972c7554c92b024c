package serviceImp

import (
	"errors"
	"fmt"
	"log/slog"

	"washline/entities"
	"washline/pkg/codegen"
	custsvc "washline/pkg/customer/service"
	"washline/pkg/order"
	repo "washline/pkg/order/repository"
	"washline/pkg/order/service"
	"washline/pkg/pricing"
)

type orderSvc struct {
	r         repo.OrderRepository
	rates     *pricing.RateTable
	codes     *codegen.Generator
	customers custsvc.CustomerService
}

func New(r repo.OrderRepository, rates *pricing.RateTable, codes *codegen.Generator, customers custsvc.CustomerService) service.OrderService {
	return &orderSvc{r: r, rates: rates, codes: codes, customers: customers}
}

func (s *orderSvc) PlaceOnline(req service.PlaceOrderRequest) (*entities.Order, pricing.Quote, error) {
	o, err := s.create(req, "online")
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	quote := s.rates.Calculate(req.ServiceType, req.EstimatedWeight, req.WantsDelivery)
	return o, quote, nil
}

func (s *orderSvc) PlaceWalkIn(req service.WalkInRequest) (*entities.Order, error) {
	o, err := s.create(req.PlaceOrderRequest, "walkin")
	if err != nil {
		return nil, err
	}
	// Walk-ins are weighed at the counter, so check-in happens immediately
	// and the order is effectively born checked_in.
	return s.CheckIn(o.OrderID, o.Version, req.CheckInRequest)
}

func (s *orderSvc) create(req service.PlaceOrderRequest, orderType string) (*entities.Order, error) {
	code, err := s.codes.OrderCode(s.r.CodeExists)
	if err != nil {
		if errors.Is(err, codegen.ErrExhausted) {
			return nil, order.ErrCodeExhausted
		}
		return nil, err
	}
	o := &entities.Order{
		Code:           code,
		BranchID:       req.BranchID,
		OrderType:      orderType,
		Status:         string(order.StatusPendingDropoff),
		CustomerPhone:  req.CustomerPhone,
		CustomerName:   req.CustomerName,
		Hall:           req.Hall,
		Room:           req.Room,
		Notes:          req.Notes,
		ServiceType:    string(req.ServiceType),
		HasWhites:      req.HasWhites,
		WashSeparately: req.WashSeparately,
		PaymentStatus:  "pending",
	}
	if err := s.r.Create(o); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	if _, err := s.customers.Ensure(req.CustomerPhone, req.CustomerName); err != nil {
		// The order stands even when the customer record lags behind.
		slog.Warn("customer record not updated", "phone", req.CustomerPhone, "err", err)
	}
	return o, nil
}

func (s *orderSvc) CheckIn(orderID uint, expectedVersion int, req service.CheckInRequest) (*entities.Order, error) {
	o, err := s.r.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != string(order.StatusPendingDropoff) || o.Weight != nil {
		return nil, order.ErrAlreadyCheckedIn
	}
	loads, total := s.rates.CheckInPrice(pricing.ServiceType(o.ServiceType), req.Weight)

	o.Status = string(order.StatusCheckedIn)
	o.BagCardNumber = &req.BagCardNumber
	o.Weight = &req.Weight
	o.Loads = &loads
	o.TotalPrice = &total
	o.Items = req.Items
	if err := s.r.SaveVersioned(o, expectedVersion); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderSvc) Advance(orderID uint, expectedVersion int, target order.Status) (*entities.Order, error) {
	o, err := s.r.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	from := order.Status(o.Status)
	// Weighing and pricing happen at check-in; a bare status write out
	// of pending_dropoff would leave the order unpriceable forever.
	if from == order.StatusPendingDropoff {
		return nil, fmt.Errorf("%w: pending_dropoff orders move through check-in", order.ErrInvalidTransition)
	}
	if target == "" {
		next, ok := from.Next()
		if !ok {
			return nil, order.ErrInvalidTransition
		}
		target = next
	}
	if !order.CanTransition(from, target) {
		return nil, fmt.Errorf("%w: %s to %s", order.ErrInvalidTransition, from, target)
	}
	o.Status = string(target)
	if err := s.r.SaveVersioned(o, expectedVersion); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderSvc) GetByID(id uint) (*entities.Order, error) { return s.r.FindByID(id) }

func (s *orderSvc) GetByCode(code string) (*entities.Order, error) { return s.r.FindByCode(code) }

func (s *orderSvc) GetByPhone(phone string) (*entities.Order, error) { return s.r.FindByPhone(phone) }

func (s *orderSvc) ListView(branchID uint, view string) ([]entities.Order, error) {
	switch view {
	case "", "all":
		return s.r.ListAll(branchID)
	case "pending":
		return s.r.ListByStatus(branchID, []string{string(order.StatusPendingDropoff)})
	case "active":
		statuses := make([]string, 0, 7)
		for _, st := range order.ActiveStatuses() {
			statuses = append(statuses, string(st))
		}
		return s.r.ListByStatus(branchID, statuses)
	case "ready":
		return s.r.ListByStatus(branchID, []string{string(order.StatusReady)})
	case "completed":
		return s.r.ListByStatus(branchID, []string{string(order.StatusCompleted)})
	}
	return nil, fmt.Errorf("unknown view %q", view)
}
