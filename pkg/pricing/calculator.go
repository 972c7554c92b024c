package pricing

import "math"

// Quote is the priced breakdown for one order. Calculate is pure: the
// same inputs against the same table always give the same quote.
type Quote struct {
	Loads       int     `json:"loads"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	ServiceFee  float64 `json:"service_fee"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// LoadsFor converts a measured weight to billable loads. Small overflow
// within the allowance still counts as exactly one load; beyond that the
// weight is divided by the nominal load size and rounded up.
func (t *RateTable) LoadsFor(weightKg float64) int {
	if weightKg <= 0 {
		return 0
	}
	if weightKg <= t.KgPerLoad+t.OverflowAllowance {
		return 1
	}
	return int(math.Ceil(weightKg / t.KgPerLoad))
}

func (t *RateTable) Calculate(st ServiceType, weightKg float64, includeDelivery bool) Quote {
	q := Quote{Loads: t.LoadsFor(weightKg)}
	q.Subtotal = float64(q.Loads) * t.RatePerLoad(st)
	q.Tax = round2(q.Subtotal * t.TaxRate)
	q.ServiceFee = t.ServiceFee
	if includeDelivery {
		q.DeliveryFee = t.DeliveryFee
	}
	q.Total = round2(q.Subtotal + q.Tax + q.ServiceFee + q.DeliveryFee)
	return q
}

// CheckInPrice is the amount frozen onto an order at the counter:
// loads times the per-load rate, taxes and fees settled at payment.
func (t *RateTable) CheckInPrice(st ServiceType, weightKg float64) (loads int, total float64) {
	loads = t.LoadsFor(weightKg)
	return loads, float64(loads) * t.RatePerLoad(st)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
