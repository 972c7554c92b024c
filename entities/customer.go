package entities

import "time"

// Customer is created lazily on a phone number's first order.
type Customer struct {
	CustomerID uint    `gorm:"primaryKey" json:"customer_id"`
	Phone      string  `json:"phone" gorm:"uniqueIndex"` // normalized, digits only
	Name       string  `json:"name"`
	OrderCount int     `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
