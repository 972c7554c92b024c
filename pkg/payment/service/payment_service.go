package service

import (
	"errors"

	"washline/entities"
)

var (
	ErrAlreadyPaid    = errors.New("order already paid")
	ErrNotPriced      = errors.New("order has not been checked in and priced")
	ErrVoucherInvalid = errors.New("voucher not found or inactive")
)

// PaymentService stages a payment result onto an order. Payment itself
// is simulated; the core only records the outcome, exactly once.
type PaymentService interface {
	Pay(orderID uint, expectedVersion int, staffID uint, method, voucherCode string) (*entities.PaymentTransaction, error)
}
