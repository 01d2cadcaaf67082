package warehouse

import (
	"fmt"
	"strconv"
)

// Snapshot is the persisted view of the whole warehouse state. It is a plain
// document: building one reads the warehouse, restoring one re-validates
// every field and rebuilds the warehouse from scratch, replaying the id
// allocators to max existing id + 1.
type Snapshot struct {
	Farmers       []Farmer           `json:"farmers"`
	Purchases     []Purchase         `json:"purchases"`
	Inventory     InventorySnapshot  `json:"inventory"`
	Orders        []Order            `json:"orders"`
	ProductPrices map[Category]Money `json:"productPrices"`
	Financials    Financials         `json:"financials"`
}

// InventorySnapshot is the persisted inventory ledger state. Package sizes
// are persisted so that an explicitly configured premium size survives a
// restart.
type InventorySnapshot struct {
	UnprocessedByType map[ProductType]Grams `json:"unprocessedByType"`
	Processed         map[Category]int      `json:"processed"`
	PackageSizes      map[Category]Grams    `json:"packageSizes"`
}

// Snapshot builds the persisted view of the current state.
func (w *Warehouse) Snapshot() Snapshot {
	inv := InventorySnapshot{
		UnprocessedByType: make(map[ProductType]Grams),
		Processed:         make(map[Category]int),
		PackageSizes:      make(map[Category]Grams),
	}
	for _, t := range ProductTypes() {
		inv.UnprocessedByType[t] = w.inventory.UnprocessedGrams(t)
	}
	for _, c := range Categories() {
		inv.Processed[c] = w.inventory.Processed(c)
		inv.PackageSizes[c] = w.inventory.PackageSize(c)
	}
	return Snapshot{
		Farmers:       w.Farmers(),
		Purchases:     w.Purchases(),
		Inventory:     inv,
		Orders:        w.Orders(),
		ProductPrices: w.Prices(),
		Financials:    w.financials,
	}
}

// Restore rebuilds a warehouse from a snapshot. Every field is re-validated;
// a malformed snapshot is rejected, never merged structurally. The financial
// aggregates are recomputed from the logs rather than trusted from the file.
func Restore(s Snapshot) (*Warehouse, error) {
	w := New()

	for _, f := range s.Farmers {
		farmer, err := NewFarmer(f.ID, f.Name, f.Phone, f.Email, f.City)
		if err != nil {
			return nil, fmt.Errorf("snapshot farmer %d: %w", f.ID, err)
		}
		if _, dup := w.farmers[farmer.ID]; dup {
			return nil, fmt.Errorf("snapshot farmer %d: duplicate id", f.ID)
		}
		w.farmers[farmer.ID] = farmer
		if farmer.ID >= w.nextFarmerID {
			w.nextFarmerID = farmer.ID + 1
		}
	}

	for _, p := range s.Purchases {
		if _, ok := w.farmers[p.FarmerID]; !ok {
			return nil, fmt.Errorf("snapshot purchase %d: %w", p.ID,
				&NotFoundError{Kind: "farmer", ID: strconv.Itoa(p.FarmerID)})
		}
		purchase, err := NewPurchase(p.ID, p.FarmerID, p.ProductType, p.Quantity.Kg(), p.PricePerKg, p.Date)
		if err != nil {
			return nil, fmt.Errorf("snapshot purchase %d: %w", p.ID, err)
		}
		w.purchases = append(w.purchases, purchase)
		if purchase.ID >= w.nextPurchaseID {
			w.nextPurchaseID = purchase.ID + 1
		}
	}

	for t, g := range s.Inventory.UnprocessedByType {
		if _, err := ParseProductType(string(t)); err != nil {
			return nil, fmt.Errorf("snapshot inventory: %w", err)
		}
		if g < 0 {
			return nil, fmt.Errorf("snapshot inventory: negative %s balance %s", t, g)
		}
		w.inventory.unprocessed[t] = g
	}
	for c, count := range s.Inventory.Processed {
		if _, err := ParseCategory(string(c)); err != nil {
			return nil, fmt.Errorf("snapshot inventory: %w", err)
		}
		if count < 0 {
			return nil, fmt.Errorf("snapshot inventory: negative %s balance %d", c, count)
		}
		w.inventory.processed[c] = count
	}
	for c, size := range s.Inventory.PackageSizes {
		if _, err := ParseCategory(string(c)); err != nil {
			return nil, fmt.Errorf("snapshot inventory: %w", err)
		}
		if size < 0 {
			return nil, fmt.Errorf("snapshot inventory: negative %s package size", c)
		}
		w.inventory.packageSizes[c] = size
	}

	for _, o := range s.Orders {
		if err := validateCustomerName(o.CustomerName); err != nil {
			return nil, fmt.Errorf("snapshot order %d: %w", o.ID, err)
		}
		if err := validateContact(o.Contact); err != nil {
			return nil, fmt.Errorf("snapshot order %d: %w", o.ID, err)
		}
		if err := validateShippingInfo(o.ShippingInfo); err != nil {
			return nil, fmt.Errorf("snapshot order %d: %w", o.ID, err)
		}
		if err := validateOrderQuantity(o.Quantity); err != nil {
			return nil, fmt.Errorf("snapshot order %d: %w", o.ID, err)
		}
		if _, err := ParseCategory(string(o.Category)); err != nil {
			return nil, fmt.Errorf("snapshot order %d: %w", o.ID, err)
		}
		if _, err := ParseStatus(string(o.Status)); err != nil {
			return nil, fmt.Errorf("snapshot order %d: %w", o.ID, err)
		}
		// Total price and tax were bound at order-creation time; they are
		// restored as persisted, not re-derived from the current price table.
		w.orders = append(w.orders, o)
		if o.ID >= w.nextOrderID {
			w.nextOrderID = o.ID + 1
		}
	}

	for c, price := range s.ProductPrices {
		if _, err := ParseCategory(string(c)); err != nil {
			return nil, fmt.Errorf("snapshot prices: %w", err)
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("snapshot prices: %s: %w", c, &InvalidPriceError{Price: price})
		}
		w.prices[c] = price
	}

	if !s.Financials.TaxRate.IsZero() {
		w.financials.TaxRate = s.Financials.TaxRate
	}
	w.refresh()
	return w, nil
}

// MarshalJSON keeps the snapshot file field order deterministic.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("farmers", s.Farmers)
	w.Append("purchases", s.Purchases)
	w.Append("inventory", s.Inventory)
	w.Append("orders", s.Orders)
	w.Append("productPrices", s.ProductPrices)
	w.Append("financials", s.Financials)
	return w.MarshalJSON()
}
