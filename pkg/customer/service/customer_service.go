package service

import (
	"strings"

	"washline/entities"
)

type CustomerService interface {
	// Ensure returns the customer for a phone number, creating the
	// record on first contact.
	Ensure(phone, name string) (*entities.Customer, error)
	GetByPhone(phone string) (*entities.Customer, error)
	// RecordPayment bumps the cumulative counters once an order's
	// payment completes.
	RecordPayment(phone string, amount float64) error
}

// NormalizePhone keeps digits only, so "+234 801-555-0199" and
// "08015550199" key the same customer.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
