package warehouse

import (
	"fmt"
	"strings"

	"github.com/seyda/warehouse/date"
)

// Status is the fulfillment state of an order. It is advisory: any transition
// is accepted, including backward ones. Only Delivered matters to the ledger,
// as a delivered order forfeits inventory reclaim on deletion.
type Status string

const (
	Pending   Status = "Pending"
	Processed Status = "Processed"
	Shipped   Status = "Shipped"
	Delivered Status = "Delivered"
)

// ParseStatus parses a string into a Status, ignoring case.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(s) {
	case "pending":
		return Pending, nil
	case "processed":
		return Processed, nil
	case "shipped":
		return Shipped, nil
	case "delivered":
		return Delivered, nil
	default:
		return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", s)}
	}
}

func (s Status) String() string { return string(s) }

// Order is a customer order against processed stock. TotalPrice and Tax are
// bound at creation time from the then-current price table and tax rate;
// later price changes do not affect existing orders.
type Order struct {
	ID           int      `json:"id"`
	CustomerName string   `json:"customerName"`
	Contact      string   `json:"contact"`
	ShippingInfo string   `json:"shippingInfo"`
	Category     Category `json:"category"`
	Quantity     int      `json:"quantity"` // package count
	Date         Date     `json:"date"`
	Status       Status   `json:"status"`
	TotalPrice   Money    `json:"totalPrice"`
	Tax          Money    `json:"tax"`
}

// NewOrder validates every field and constructs a Pending order priced with
// the given unit price and tax rate. A zero date defaults to today.
func NewOrder(id int, customerName, contact, shippingInfo string, category Category, quantity int, on Date, unitPrice Money, taxRate Quantity) (Order, error) {
	if err := validateCustomerName(customerName); err != nil {
		return Order{}, err
	}
	if err := validateContact(contact); err != nil {
		return Order{}, err
	}
	if err := validateShippingInfo(shippingInfo); err != nil {
		return Order{}, err
	}
	if err := validateOrderQuantity(quantity); err != nil {
		return Order{}, err
	}
	if on.IsZero() {
		on = date.Today()
	}
	total := unitPrice.Mul(Q(quantity))
	return Order{
		ID:           id,
		CustomerName: customerName,
		Contact:      contact,
		ShippingInfo: shippingInfo,
		Category:     category,
		Quantity:     quantity,
		Date:         on,
		Status:       Pending,
		TotalPrice:   total,
		Tax:          total.Mul(taxRate),
	}, nil
}

func (o Order) String() string {
	return fmt.Sprintf("order #%d: %d x %s for %s (%s) on %s", o.ID, o.Quantity, o.Category, o.CustomerName, o.Status, o.Date)
}

// MarshalJSON keeps the snapshot field order deterministic.
func (o Order) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", o.ID)
	w.Append("customerName", o.CustomerName)
	w.Append("contact", o.Contact)
	w.Append("shippingInfo", o.ShippingInfo)
	w.Append("category", o.Category)
	w.Append("quantity", o.Quantity)
	w.Append("date", o.Date)
	w.Append("status", o.Status)
	w.Append("totalPrice", o.TotalPrice)
	w.Append("tax", o.Tax)
	return w.MarshalJSON()
}
