package entities

import "time"

// PaymentTransaction is the append-only record of a staged payment.
type PaymentTransaction struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Reference   string  `json:"reference" gorm:"uniqueIndex"`
	OrderID     uint    `json:"order_id" gorm:"index"`
	StaffID     uint    `json:"staff_id"`
	Method      string  `json:"method"` // cash|card|transfer
	Amount      float64 `json:"amount"` // after discount
	Discount    float64 `json:"discount"`
	VoucherCode *string `json:"voucher_code"`

	CreatedAt time.Time `json:"created_at"`
}
