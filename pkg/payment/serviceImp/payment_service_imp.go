package serviceImp

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"washline/entities"
	custsvc "washline/pkg/customer/service"
	orderrepo "washline/pkg/order/repository"
	"washline/pkg/payment/service"
)

type paymentSvc struct {
	db        *gorm.DB
	orders    orderrepo.OrderRepository
	customers custsvc.CustomerService
}

func New(db *gorm.DB, orders orderrepo.OrderRepository, customers custsvc.CustomerService) service.PaymentService {
	return &paymentSvc{db: db, orders: orders, customers: customers}
}

func (s *paymentSvc) Pay(orderID uint, expectedVersion int, staffID uint, method, voucherCode string) (*entities.PaymentTransaction, error) {
	o, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if o.PaymentStatus == "paid" {
		return nil, service.ErrAlreadyPaid
	}
	if o.TotalPrice == nil {
		return nil, service.ErrNotPriced
	}

	amount := *o.TotalPrice
	discount := 0.0
	var voucher *string
	if voucherCode != "" {
		d, err := s.voucherDiscount(voucherCode, amount)
		if err != nil {
			return nil, err
		}
		discount = d
		voucher = &voucherCode
	}

	o.PaymentStatus = "paid"
	o.PaymentMethod = &method
	tx := &entities.PaymentTransaction{
		Reference:   uuid.NewString(),
		OrderID:     o.OrderID,
		StaffID:     staffID,
		Method:      method,
		Amount:      amount - discount,
		Discount:    discount,
		VoucherCode: voucher,
	}
	// The paid flag and the transaction record land together or not at all.
	err = s.db.Transaction(func(dbtx *gorm.DB) error {
		if err := s.orders.WithTx(dbtx).SaveVersioned(o, expectedVersion); err != nil {
			return err
		}
		return dbtx.Create(tx).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.customers.RecordPayment(o.CustomerPhone, tx.Amount); err != nil {
		// Counters are cosmetic; the payment record is what matters.
		slog.Warn("customer counters not updated", "order", o.Code, "err", err)
	}
	return tx, nil
}

func (s *paymentSvc) voucherDiscount(code string, amount float64) (float64, error) {
	var v entities.Voucher
	err := s.db.Where("code = ? AND active = ?", code, true).First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, service.ErrVoucherInvalid
		}
		return 0, err
	}
	var d float64
	switch v.Kind {
	case "percent":
		d = amount * v.Amount / 100
	default: // flat
		d = v.Amount
	}
	if d > amount {
		d = amount
	}
	return d, nil
}
