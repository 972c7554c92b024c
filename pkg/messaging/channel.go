package messaging

import (
	"fmt"
	"strings"

	"washline/entities"
	"washline/pkg/order"
)

// Channel hands a composed text to whatever carries it (a WhatsApp
// gateway in production). Delivery is best-effort; the core never
// depends on the message arriving.
type Channel interface {
	Send(toPhone, text string) error
}

var statusLines = map[order.Status]string{
	order.StatusPendingDropoff: "We are waiting for your drop-off.",
	order.StatusCheckedIn:      "Your laundry has been checked in and weighed.",
	order.StatusSorting:        "Your laundry is being sorted.",
	order.StatusWashing:        "Your laundry is in the wash.",
	order.StatusDrying:         "Your laundry is drying.",
	order.StatusFolding:        "Your laundry is being folded.",
	order.StatusReady:          "Your laundry is ready for pickup!",
	order.StatusOutForDelivery: "Your laundry is out for delivery.",
	order.StatusCompleted:      "Your order is complete. Thank you!",
}

// StatusMessage composes the customer-facing text for an order's
// current state.
func StatusMessage(o *entities.Order) string {
	var b strings.Builder
	name := o.CustomerName
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "Hi %s, update on order %s:\n", name, o.Code)
	line, ok := statusLines[order.Status(o.Status)]
	if !ok {
		line = "Your order status is " + o.Status + "."
	}
	b.WriteString(line)
	if o.TotalPrice != nil {
		fmt.Fprintf(&b, "\nTotal: %.2f (%d load(s), %.1f kg)", *o.TotalPrice, deref(o.Loads), derefF(o.Weight))
	}
	if order.Status(o.Status) == order.StatusReady && o.BagCardNumber != nil {
		fmt.Fprintf(&b, "\nShow bag card %s at the counter.", *o.BagCardNumber)
	}
	return b.String()
}

type Notifier struct{ ch Channel }

func NewNotifier(ch Channel) *Notifier { return &Notifier{ch: ch} }

func (n *Notifier) NotifyStatus(o *entities.Order) error {
	return n.ch.Send(o.CustomerPhone, StatusMessage(o))
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefF(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
