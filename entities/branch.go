package entities

import "time"

type Branch struct {
	BranchID uint   `gorm:"primaryKey" json:"branch_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`

	CreatedAt time.Time `json:"created_at"`
}

type Voucher struct {
	VoucherID uint    `gorm:"primaryKey" json:"voucher_id"`
	Code      string  `json:"code" gorm:"uniqueIndex"`
	Kind      string  `json:"kind"` // flat|percent
	Amount    float64 `json:"amount"`
	Active    bool    `json:"active"`

	CreatedAt time.Time `json:"created_at"`
}
