package entities

import "time"

// OrderItem is one itemized line captured during check-in.
type OrderItem struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	OrderID  uint   `gorm:"primaryKey" json:"order_id"`
	Code     string `json:"code" gorm:"uniqueIndex"` // public "WL-4921" style handle
	BranchID uint   `json:"branch_id" gorm:"index"`

	OrderType string `json:"order_type"`          // online|walkin
	Status    string `json:"status" gorm:"index"` // see pkg/order stage sequence

	CustomerPhone string `json:"customer_phone" gorm:"index"`
	CustomerName  string `json:"customer_name"`
	Hall          string `json:"hall"`
	Room          string `json:"room"`
	Notes         string `json:"notes"`

	ServiceType    string  `json:"service_type"` // wash_only|wash_and_dry|dry_only
	HasWhites      bool    `json:"has_whites"`
	WashSeparately bool    `json:"wash_separately"`
	BagCardNumber  *string `json:"bag_card_number"` // nil until check-in

	Items []OrderItem `gorm:"serializer:json" json:"items"`

	// Set together at check-in, immutable afterwards. All nil or all set.
	Weight     *float64 `json:"weight"`
	Loads      *int     `json:"loads"`
	TotalPrice *float64 `json:"total_price"`

	PaymentStatus string  `json:"payment_status"` // pending|paid
	PaymentMethod *string `json:"payment_method"`

	// Version guards against two terminals overwriting each other.
	Version int `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
