package warehouse

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
)

// Warehouse is the model of record. It exclusively owns every collection, the
// inventory ledger, the price table and the financial aggregates.
//
// Every public mutation follows the same template: validate inputs, check
// business-rule preconditions against current state, apply all state changes,
// then recompute the financial aggregates. A failed precondition leaves the
// warehouse exactly in its pre-call state.
//
// Execution is single-threaded and synchronous: one mutation runs at a time
// and completes before the next begins, so no locking is present.
type Warehouse struct {
	farmers    map[int]Farmer
	purchases  []Purchase
	orders     []Order
	inventory  *Inventory
	prices     map[Category]Money
	financials Financials

	// id allocators, one per entity type. They only increase, even across
	// process restarts (replayed from the loaded snapshot).
	nextFarmerID   int
	nextPurchaseID int
	nextOrderID    int
}

// defaultPrices is the initial price table per category.
func defaultPrices() map[Category]Money {
	return map[Category]Money{
		Small:      M(5.00),
		Medium:     M(10.00),
		Large:      M(18.00),
		ExtraLarge: M(30.00),
		FamilyPack: M(50.00),
		BulkPack:   M(100.00),
		Premium:    M(75.00),
	}
}

// New creates an empty warehouse with default prices and tax rate.
func New() *Warehouse {
	return &Warehouse{
		farmers:        make(map[int]Farmer),
		inventory:      NewInventory(),
		prices:         defaultPrices(),
		financials:     newFinancials(defaultTaxRate),
		nextFarmerID:   1,
		nextPurchaseID: 1,
		nextOrderID:    1,
	}
}

// refresh recomputes the derived financial state. Called after every mutation.
func (w *Warehouse) refresh() {
	w.financials.recompute(w.purchases, w.orders)
}

// --- farmers ---

// AddFarmer validates the fields, assigns a fresh id and records the farmer.
func (w *Warehouse) AddFarmer(name, phone, email, city string) (int, error) {
	farmer, err := NewFarmer(w.nextFarmerID, name, phone, email, city)
	if err != nil {
		return 0, err
	}
	w.farmers[farmer.ID] = farmer
	w.nextFarmerID++
	w.refresh()
	return farmer.ID, nil
}

// UpdateFarmer replaces the farmer record under the same id. Empty fields
// keep their current value; the resulting record is re-validated as a whole.
func (w *Warehouse) UpdateFarmer(id int, name, phone, email, city string) error {
	current, ok := w.farmers[id]
	if !ok {
		return &NotFoundError{Kind: "farmer", ID: strconv.Itoa(id)}
	}
	if name == "" {
		name = current.Name
	}
	if phone == "" {
		phone = current.Phone
	}
	if email == "" {
		email = current.Email
	}
	if city == "" {
		city = current.City
	}
	farmer, err := NewFarmer(id, name, phone, email, city)
	if err != nil {
		return err
	}
	w.farmers[id] = farmer
	w.refresh()
	return nil
}

// DeleteFarmer removes a farmer. A farmer still referenced by purchases
// cannot be deleted; purchases must be deleted or reassigned first.
func (w *Warehouse) DeleteFarmer(id int) error {
	if _, ok := w.farmers[id]; !ok {
		return &NotFoundError{Kind: "farmer", ID: strconv.Itoa(id)}
	}
	var referenced int
	for _, p := range w.purchases {
		if p.FarmerID == id {
			referenced++
		}
	}
	if referenced > 0 {
		return fmt.Errorf("farmer %d is still referenced by %d purchase(s): delete or reassign them first", id, referenced)
	}
	delete(w.farmers, id)
	w.refresh()
	return nil
}

// Farmer returns the farmer with this id, or false if unknown.
func (w *Warehouse) Farmer(id int) (Farmer, bool) {
	f, ok := w.farmers[id]
	return f, ok
}

// Farmers returns all farmers sorted by id.
func (w *Warehouse) Farmers() []Farmer {
	farmers := make([]Farmer, 0, len(w.farmers))
	for _, f := range w.farmers {
		farmers = append(farmers, f)
	}
	sort.Slice(farmers, func(i, j int) bool { return farmers[i].ID < farmers[j].ID })
	return farmers
}

// --- purchases ---

// RecordPurchase creates a purchase from a farmer and credits the raw pool.
func (w *Warehouse) RecordPurchase(farmerID int, productType ProductType, kg Quantity, pricePerKg Money, on Date) (int, error) {
	if _, ok := w.farmers[farmerID]; !ok {
		return 0, &NotFoundError{Kind: "farmer", ID: strconv.Itoa(farmerID)}
	}
	purchase, err := NewPurchase(w.nextPurchaseID, farmerID, productType, kg, pricePerKg, on)
	if err != nil {
		return 0, err
	}
	if err := w.inventory.AddUnprocessed(purchase.ProductType, purchase.Quantity); err != nil {
		return 0, err
	}
	w.purchases = append(w.purchases, purchase)
	w.nextPurchaseID++
	w.refresh()
	return purchase.ID, nil
}

// PurchaseUpdate describes a partial purchase update. Zero-valued fields keep
// the current value (none of the zero values is a legal input on its own).
type PurchaseUpdate struct {
	FarmerID    int
	ProductType ProductType
	Kg          Quantity
	PricePerKg  Money
	Date        Date
}

// UpdatePurchase reconstructs the purchase under the same id and reconciles
// the ledger: the original purchase's contribution is debited from its pool
// before the new quantity is credited to the (possibly different) pool.
// The update is rejected with InsufficientStockError when the original mass
// was already partially consumed by processing, as reversing it would drive
// the pool negative.
func (w *Warehouse) UpdatePurchase(id int, update PurchaseUpdate) error {
	idx := slices.IndexFunc(w.purchases, func(p Purchase) bool { return p.ID == id })
	if idx < 0 {
		return &NotFoundError{Kind: "purchase", ID: strconv.Itoa(id)}
	}
	current := w.purchases[idx]

	farmerID := current.FarmerID
	if update.FarmerID != 0 {
		farmerID = update.FarmerID
	}
	if _, ok := w.farmers[farmerID]; !ok {
		return &NotFoundError{Kind: "farmer", ID: strconv.Itoa(farmerID)}
	}
	productType := current.ProductType
	if update.ProductType != "" {
		productType = update.ProductType
	}
	kg := current.Quantity.Kg()
	if !update.Kg.IsZero() {
		kg = update.Kg
	}
	pricePerKg := current.PricePerKg
	if !update.PricePerKg.IsZero() {
		pricePerKg = update.PricePerKg
	}
	on := current.Date
	if !update.Date.IsZero() {
		on = update.Date
	}

	updated, err := NewPurchase(id, farmerID, productType, kg, pricePerKg, on)
	if err != nil {
		return err
	}

	// Reverse the original contribution first; rejected, not clamped, if the
	// mass was already consumed.
	if err := w.inventory.removeUnprocessed(current.ProductType, current.Quantity); err != nil {
		return err
	}
	if err := w.inventory.AddUnprocessed(updated.ProductType, updated.Quantity); err != nil {
		// Restore the original contribution; AddUnprocessed only fails on an
		// unknown type, which NewPurchase has already ruled out.
		w.inventory.AddUnprocessed(current.ProductType, current.Quantity)
		return err
	}
	w.purchases[idx] = updated
	w.refresh()
	return nil
}

// DeletePurchase removes a purchase and debits its mass from the raw pool.
// Rejected when the mass was already consumed by processing.
func (w *Warehouse) DeletePurchase(id int) error {
	idx := slices.IndexFunc(w.purchases, func(p Purchase) bool { return p.ID == id })
	if idx < 0 {
		return &NotFoundError{Kind: "purchase", ID: strconv.Itoa(id)}
	}
	purchase := w.purchases[idx]
	if err := w.inventory.removeUnprocessed(purchase.ProductType, purchase.Quantity); err != nil {
		return err
	}
	w.purchases = slices.Delete(w.purchases, idx, idx+1)
	w.refresh()
	return nil
}

// Purchase returns the purchase with this id, or false if unknown.
func (w *Warehouse) Purchase(id int) (Purchase, bool) {
	idx := slices.IndexFunc(w.purchases, func(p Purchase) bool { return p.ID == id })
	if idx < 0 {
		return Purchase{}, false
	}
	return w.purchases[idx], true
}

// Purchases returns a copy of the purchase log in recording order.
func (w *Warehouse) Purchases() []Purchase { return slices.Clone(w.purchases) }

// --- inventory ---

// ProcessInventory converts raw mass of a source type into packaged stock of
// a category.
func (w *Warehouse) ProcessInventory(source ProductType, category Category, quantity int) error {
	if err := w.inventory.ProcessToCategory(source, category, quantity); err != nil {
		return err
	}
	w.refresh()
	return nil
}

// SetPremiumPackageSize configures the grams per premium package. This is an
// explicit operation; processing calls never change the configuration.
func (w *Warehouse) SetPremiumPackageSize(size Grams) error {
	if err := w.inventory.SetPackageSize(Premium, size); err != nil {
		return err
	}
	w.refresh()
	return nil
}

// Inventory returns the inventory ledger for read-only queries. Mutations go
// through the Warehouse methods only.
func (w *Warehouse) Inventory() *Inventory { return w.inventory }

// --- orders ---

// CreateOrder validates the fields, reserves processed stock and records the
// order. Total price and tax are computed from the current price table and
// tax rate and are not re-derived later.
func (w *Warehouse) CreateOrder(customerName, contact, shippingInfo string, category Category, quantity int, on Date) (int, error) {
	price, ok := w.prices[category]
	if !ok {
		return 0, &NotFoundError{Kind: "category", ID: string(category)}
	}
	order, err := NewOrder(w.nextOrderID, customerName, contact, shippingInfo, category, quantity, on, price, w.financials.TaxRate)
	if err != nil {
		return 0, err
	}
	if err := w.inventory.reserve(category, quantity); err != nil {
		return 0, err
	}
	w.orders = append(w.orders, order)
	w.nextOrderID++
	w.refresh()
	return order.ID, nil
}

// OrderUpdate describes a partial order update. Zero-valued fields keep the
// current value.
type OrderUpdate struct {
	CustomerName string
	Contact      string
	ShippingInfo string
	Category     Category
	Quantity     int
	Date         Date
}

// UpdateOrder applies the re-reservation protocol: when quantity or category
// changes, the order's currently-reserved stock is first returned to the
// ledger, availability is checked for the new category and quantity, and on
// insufficiency the original reservation is restored before the error is
// surfaced. A failed update leaks no state change.
func (w *Warehouse) UpdateOrder(id int, update OrderUpdate) error {
	idx := slices.IndexFunc(w.orders, func(o Order) bool { return o.ID == id })
	if idx < 0 {
		return &NotFoundError{Kind: "order", ID: strconv.Itoa(id)}
	}
	current := w.orders[idx]

	customerName := current.CustomerName
	if update.CustomerName != "" {
		customerName = update.CustomerName
	}
	contact := current.Contact
	if update.Contact != "" {
		contact = update.Contact
	}
	shippingInfo := current.ShippingInfo
	if update.ShippingInfo != "" {
		shippingInfo = update.ShippingInfo
	}
	category := current.Category
	if update.Category != "" {
		category = update.Category
	}
	quantity := current.Quantity
	if update.Quantity != 0 {
		quantity = update.Quantity
	}
	on := current.Date
	if !update.Date.IsZero() {
		on = update.Date
	}

	price, ok := w.prices[category]
	if !ok {
		return &NotFoundError{Kind: "category", ID: string(category)}
	}
	updated, err := NewOrder(id, customerName, contact, shippingInfo, category, quantity, on, price, w.financials.TaxRate)
	if err != nil {
		return err
	}
	updated.Status = current.Status

	if category != current.Category || quantity != current.Quantity {
		w.inventory.release(current.Category, current.Quantity)
		if err := w.inventory.reserve(category, quantity); err != nil {
			// Restore the original reservation; it cannot fail since the
			// stock was just released.
			w.inventory.reserve(current.Category, current.Quantity)
			return err
		}
	}
	w.orders[idx] = updated
	w.refresh()
	return nil
}

// UpdateOrderStatus sets the order status. Transitions are advisory: any
// status change is accepted, including backward ones.
func (w *Warehouse) UpdateOrderStatus(id int, status Status) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}
	idx := slices.IndexFunc(w.orders, func(o Order) bool { return o.ID == id })
	if idx < 0 {
		return &NotFoundError{Kind: "order", ID: strconv.Itoa(id)}
	}
	w.orders[idx].Status = status
	w.refresh()
	return nil
}

// DeleteOrder removes an order and returns its reserved stock to the ledger,
// unless the order was delivered: delivered stock has physically shipped and
// is not returnable.
func (w *Warehouse) DeleteOrder(id int) error {
	idx := slices.IndexFunc(w.orders, func(o Order) bool { return o.ID == id })
	if idx < 0 {
		return &NotFoundError{Kind: "order", ID: strconv.Itoa(id)}
	}
	order := w.orders[idx]
	if order.Status != Delivered {
		w.inventory.release(order.Category, order.Quantity)
	}
	w.orders = slices.Delete(w.orders, idx, idx+1)
	w.refresh()
	return nil
}

// Order returns the order with this id, or false if unknown.
func (w *Warehouse) Order(id int) (Order, bool) {
	idx := slices.IndexFunc(w.orders, func(o Order) bool { return o.ID == id })
	if idx < 0 {
		return Order{}, false
	}
	return w.orders[idx], true
}

// Orders returns a copy of the order log in creation order.
func (w *Warehouse) Orders() []Order { return slices.Clone(w.orders) }

// --- prices & financials ---

// UpdateProductPrice sets the unit price of a category. Existing orders keep
// the price they were created with.
func (w *Warehouse) UpdateProductPrice(category Category, price Money) error {
	if !price.IsPositive() {
		return &InvalidPriceError{Price: price}
	}
	if _, ok := w.prices[category]; !ok {
		return &NotFoundError{Kind: "category", ID: string(category)}
	}
	w.prices[category] = price
	w.refresh()
	return nil
}

// Price returns the current unit price of a category.
func (w *Warehouse) Price(category Category) (Money, bool) {
	p, ok := w.prices[category]
	return p, ok
}

// Prices returns a copy of the price table.
func (w *Warehouse) Prices() map[Category]Money {
	prices := make(map[Category]Money, len(w.prices))
	for c, p := range w.prices {
		prices[c] = p
	}
	return prices
}

// Financials returns the current derived aggregates.
func (w *Warehouse) Financials() Financials { return w.financials }
