package serviceImp

import (
	"errors"
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"washline/database"
	"washline/entities"
	"washline/pkg/codegen"
	custRepoImp "washline/pkg/customer/repositoryImp"
	custSvcImp "washline/pkg/customer/serviceImp"
	custsvc "washline/pkg/customer/service"
	"washline/pkg/order"
	orderRepoImp "washline/pkg/order/repositoryImp"
	ordersvc "washline/pkg/order/service"
	orderSvcImp "washline/pkg/order/serviceImp"
	"washline/pkg/payment/service"
	"washline/pkg/pricing"
)

type fixture struct {
	db        *gorm.DB
	orders    ordersvc.OrderService
	customers custsvc.CustomerService
	payments  service.PaymentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	orderRepo := orderRepoImp.New(db)
	customers := custSvcImp.New(custRepoImp.New(db))
	orders := orderSvcImp.New(orderRepo, pricing.Defaults(), codegen.New("WL"), customers)
	return &fixture{
		db:        db,
		orders:    orders,
		customers: customers,
		payments:  New(db, orderRepo, customers),
	}
}

// checkedInOrder places and checks in an order worth one wash_only load.
func (f *fixture) checkedInOrder(t *testing.T) *entities.Order {
	t.Helper()
	placed, _, err := f.orders.PlaceOnline(ordersvc.PlaceOrderRequest{
		CustomerPhone: "08015550199",
		CustomerName:  "Ada",
		ServiceType:   pricing.WashOnly,
	})
	if err != nil {
		t.Fatal(err)
	}
	o, err := f.orders.CheckIn(placed.OrderID, placed.Version, ordersvc.CheckInRequest{Weight: 8, BagCardNumber: "042"})
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestPay(t *testing.T) {
	f := newFixture(t)
	o := f.checkedInOrder(t)

	tx, err := f.payments.Pay(o.OrderID, o.Version, 7, "cash", "")
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if tx.Reference == "" {
		t.Error("transaction reference not set")
	}
	if tx.Amount != *o.TotalPrice || tx.Discount != 0 || tx.StaffID != 7 {
		t.Errorf("tx = %+v", tx)
	}

	paid, err := f.orders.GetByID(o.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if paid.PaymentStatus != "paid" || paid.PaymentMethod == nil || *paid.PaymentMethod != "cash" {
		t.Errorf("order payment = %s/%v", paid.PaymentStatus, paid.PaymentMethod)
	}

	// Counters move with the payment, not with order creation.
	c, err := f.customers.GetByPhone("08015550199")
	if err != nil {
		t.Fatal(err)
	}
	if c.OrderCount != 1 || c.TotalSpent != tx.Amount {
		t.Errorf("customer counters = %d/%.2f", c.OrderCount, c.TotalSpent)
	}
}

func TestPayTwiceRejected(t *testing.T) {
	f := newFixture(t)
	o := f.checkedInOrder(t)
	if _, err := f.payments.Pay(o.OrderID, o.Version, 7, "cash", ""); err != nil {
		t.Fatal(err)
	}
	_, err := f.payments.Pay(o.OrderID, o.Version+1, 7, "cash", "")
	if !errors.Is(err, service.ErrAlreadyPaid) {
		t.Errorf("second payment: got %v, want ErrAlreadyPaid", err)
	}
}

func TestPayUnpricedRejected(t *testing.T) {
	f := newFixture(t)
	placed, _, err := f.orders.PlaceOnline(ordersvc.PlaceOrderRequest{
		CustomerPhone: "08015550199",
		ServiceType:   pricing.WashOnly,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.payments.Pay(placed.OrderID, placed.Version, 7, "cash", ""); !errors.Is(err, service.ErrNotPriced) {
		t.Errorf("unpriced order: got %v, want ErrNotPriced", err)
	}
}

func TestPayStaleVersionRejected(t *testing.T) {
	f := newFixture(t)
	o := f.checkedInOrder(t)
	if _, err := f.payments.Pay(o.OrderID, o.Version-1, 7, "cash", ""); !errors.Is(err, order.ErrVersionConflict) {
		t.Errorf("stale version: got %v, want ErrVersionConflict", err)
	}
}

func TestPayLeavesNoPartialState(t *testing.T) {
	f := newFixture(t)
	o := f.checkedInOrder(t)

	// With the transactions table gone the insert fails, and the paid
	// flag must roll back with it.
	if err := f.db.Migrator().DropTable(&entities.PaymentTransaction{}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.payments.Pay(o.OrderID, o.Version, 7, "cash", ""); err == nil {
		t.Fatal("Pay succeeded without a transaction record")
	}
	got, err := f.orders.GetByID(o.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if got.PaymentStatus != "pending" || got.Version != o.Version {
		t.Fatalf("order after failed payment = %s v%d, want pending v%d", got.PaymentStatus, got.Version, o.Version)
	}
	c, err := f.customers.GetByPhone("08015550199")
	if err != nil {
		t.Fatal(err)
	}
	if c.OrderCount != 0 || c.TotalSpent != 0 {
		t.Errorf("customer counters moved on a failed payment: %d/%.2f", c.OrderCount, c.TotalSpent)
	}

	// Once the table is back the same request goes through.
	if err := database.Migrate(f.db); err != nil {
		t.Fatal(err)
	}
	if _, err := f.payments.Pay(o.OrderID, o.Version, 7, "cash", ""); err != nil {
		t.Fatalf("Pay after recovery: %v", err)
	}
}

func TestPayWithVouchers(t *testing.T) {
	f := newFixture(t)
	if err := f.db.Create(&entities.Voucher{Code: "TEN", Kind: "percent", Amount: 10, Active: true}).Error; err != nil {
		t.Fatal(err)
	}
	if err := f.db.Create(&entities.Voucher{Code: "BIG", Kind: "flat", Amount: 99999, Active: true}).Error; err != nil {
		t.Fatal(err)
	}
	if err := f.db.Create(&entities.Voucher{Code: "OLD", Kind: "flat", Amount: 100, Active: false}).Error; err != nil {
		t.Fatal(err)
	}

	o := f.checkedInOrder(t)
	price := *o.TotalPrice
	tx, err := f.payments.Pay(o.OrderID, o.Version, 7, "card", "TEN")
	if err != nil {
		t.Fatalf("Pay with voucher: %v", err)
	}
	if tx.Discount != price*0.10 || tx.Amount != price*0.90 {
		t.Errorf("discount/amount = %.2f/%.2f for price %.2f", tx.Discount, tx.Amount, price)
	}
	if tx.VoucherCode == nil || *tx.VoucherCode != "TEN" {
		t.Errorf("voucher code = %v", tx.VoucherCode)
	}

	// A flat voucher never pushes the amount below zero.
	o2 := f.checkedInOrder(t)
	tx2, err := f.payments.Pay(o2.OrderID, o2.Version, 7, "card", "BIG")
	if err != nil {
		t.Fatal(err)
	}
	if tx2.Amount != 0 {
		t.Errorf("amount = %.2f, want 0 when the discount exceeds the price", tx2.Amount)
	}

	// Inactive and unknown vouchers are rejected before anything mutates.
	o3 := f.checkedInOrder(t)
	for _, code := range []string{"OLD", "NOPE"} {
		if _, err := f.payments.Pay(o3.OrderID, o3.Version, 7, "card", code); !errors.Is(err, service.ErrVoucherInvalid) {
			t.Errorf("voucher %q: got %v, want ErrVoucherInvalid", code, err)
		}
	}
	unpaid, _ := f.orders.GetByID(o3.OrderID)
	if unpaid.PaymentStatus != "pending" {
		t.Error("rejected voucher must leave the order unpaid")
	}
}
