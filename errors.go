package warehouse

import "fmt"

// ValidationError reports a malformed input field. It is always returned
// before any state mutation occurs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown entity id, product type or category.
type NotFoundError struct {
	Kind string // "farmer", "purchase", "order", "product type", "category"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InsufficientStockError reports a ledger balance too low for a requested
// conversion or reservation. Available and Required are in the unit of the
// pool that was short: grams for unprocessed stock, packages for processed.
type InsufficientStockError struct {
	Pool      string // product type or category that was short
	Available int64
	Required  int64
	Unit      string // "g" or "packages"
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient %s stock: available %d%s, required %d%s",
		e.Pool, e.Available, e.Unit, e.Required, e.Unit)
}

// InvalidPriceError reports a non-positive price.
type InvalidPriceError struct {
	Price Money
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("price must be greater than 0, got %s", e.Price)
}
