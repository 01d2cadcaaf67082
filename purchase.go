package warehouse

import (
	"fmt"

	"github.com/seyda/warehouse/date"
)

// ProductType is a raw stock bucket.
type ProductType string

const (
	Fresh   ProductType = "fresh"
	Frozen  ProductType = "frozen"
	Organic ProductType = "organic"
)

// ProductTypes lists every known product type in display order.
func ProductTypes() []ProductType { return []ProductType{Fresh, Frozen, Organic} }

// ParseProductType parses a string into a ProductType.
func ParseProductType(s string) (ProductType, error) {
	switch ProductType(s) {
	case Fresh, Frozen, Organic:
		return ProductType(s), nil
	default:
		return "", &NotFoundError{Kind: "product type", ID: s}
	}
}

func (t ProductType) String() string { return string(t) }

// Purchase records raw product bought from a farmer. Mass is stored
// canonically in grams; the purchase is immutable once constructed, an
// "update" reconstructs it under the same id.
type Purchase struct {
	ID          int         `json:"id"`
	FarmerID    int         `json:"farmerId"`
	ProductType ProductType `json:"productType"`
	Quantity    Grams       `json:"quantity"` // grams
	PricePerKg  Money       `json:"pricePerKg"`
	Date        Date        `json:"date"`
}

// NewPurchase constructs a Purchase from a quantity expressed in kilograms.
// A zero date defaults to today.
func NewPurchase(id, farmerID int, productType ProductType, kg Quantity, pricePerKg Money, on Date) (Purchase, error) {
	if _, err := ParseProductType(string(productType)); err != nil {
		return Purchase{}, err
	}
	if !kg.IsPositive() {
		return Purchase{}, &ValidationError{Field: "quantity", Reason: "must be greater than 0"}
	}
	if !pricePerKg.IsPositive() {
		return Purchase{}, &InvalidPriceError{Price: pricePerKg}
	}
	if on.IsZero() {
		on = date.Today()
	}
	return Purchase{
		ID:          id,
		FarmerID:    farmerID,
		ProductType: productType,
		Quantity:    kg.Grams(),
		PricePerKg:  pricePerKg,
		Date:        on,
	}, nil
}

// PricePerGram is the per-gram unit price derived from the per-kg price.
func (p Purchase) PricePerGram() Money { return p.PricePerKg.PerGram() }

// TotalCost is the purchase expense: grams times the per-gram price.
func (p Purchase) TotalCost() Money { return p.PricePerGram().MulGrams(p.Quantity) }

func (p Purchase) String() string {
	return fmt.Sprintf("purchase #%d: %s of %s at %s/kg on %s", p.ID, p.Quantity, p.ProductType, p.PricePerKg, p.Date)
}

// MarshalJSON keeps the snapshot field order deterministic and persists the
// derived fields for readability of the snapshot file.
func (p Purchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("farmerId", p.FarmerID)
	w.Append("productType", p.ProductType)
	w.Append("quantity", p.Quantity)
	w.Append("pricePerKg", p.PricePerKg)
	w.Append("date", p.Date)
	w.Append("totalCost", p.TotalCost())
	return w.MarshalJSON()
}
