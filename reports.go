package warehouse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/seyda/warehouse/date"
)

// Query-time filters and report builders. These are pure functions over the
// immutable purchase and order logs; they never mutate core state.

// OrderFilter selects orders. Zero-valued fields do not filter.
type OrderFilter struct {
	Status   Status
	Customer string // case-insensitive substring of the customer name
	Category Category
	Range    date.Range
}

// FilterOrders returns the orders matching every set criterion, in creation order.
func (w *Warehouse) FilterOrders(filter OrderFilter) []Order {
	var orders []Order
	for _, o := range w.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.Customer != "" && !strings.Contains(strings.ToLower(o.CustomerName), strings.ToLower(filter.Customer)) {
			continue
		}
		if filter.Category != "" && o.Category != filter.Category {
			continue
		}
		if !filter.Range.Contains(o.Date) {
			continue
		}
		orders = append(orders, o)
	}
	return orders
}

// PurchaseFilter selects purchases. Zero-valued fields do not filter;
// FarmerID filters only when positive (farmer ids start at 1).
type PurchaseFilter struct {
	ProductType ProductType
	FarmerID    int
	Range       date.Range
}

// FilterPurchases returns the purchases matching every set criterion, in
// recording order.
func (w *Warehouse) FilterPurchases(filter PurchaseFilter) []Purchase {
	var purchases []Purchase
	for _, p := range w.purchases {
		if filter.ProductType != "" && p.ProductType != filter.ProductType {
			continue
		}
		if filter.FarmerID > 0 && p.FarmerID != filter.FarmerID {
			continue
		}
		if !filter.Range.Contains(p.Date) {
			continue
		}
		purchases = append(purchases, p)
	}
	return purchases
}

// PurchaseSort is a sort criterion for purchase listings.
type PurchaseSort string

const (
	ByDate     PurchaseSort = "date"     // newest first
	ByFarmer   PurchaseSort = "farmer"   // farmer name, A to Z
	ByType     PurchaseSort = "type"     // product type, A to Z
	ByQuantity PurchaseSort = "quantity" // largest first
	ByPrice    PurchaseSort = "price"    // highest per-kg price first
	ByCost     PurchaseSort = "cost"     // highest total cost first
)

// ParsePurchaseSort parses a string into a PurchaseSort.
func ParsePurchaseSort(s string) (PurchaseSort, error) {
	switch PurchaseSort(s) {
	case ByDate, ByFarmer, ByType, ByQuantity, ByPrice, ByCost:
		return PurchaseSort(s), nil
	default:
		return "", &ValidationError{Field: "sort", Reason: fmt.Sprintf("unknown criteria %q", s)}
	}
}

// SortPurchases orders the given purchases in place by the criterion.
func (w *Warehouse) SortPurchases(purchases []Purchase, criteria PurchaseSort) {
	sort.SliceStable(purchases, func(i, j int) bool {
		a, b := purchases[i], purchases[j]
		switch criteria {
		case ByFarmer:
			return w.FarmerName(a.FarmerID) < w.FarmerName(b.FarmerID)
		case ByType:
			return a.ProductType < b.ProductType
		case ByQuantity:
			return a.Quantity > b.Quantity
		case ByPrice:
			return b.PricePerKg.LessThan(a.PricePerKg)
		case ByCost:
			return b.TotalCost().LessThan(a.TotalCost())
		default: // ByDate
			return b.Date.Before(a.Date)
		}
	})
}

// FarmerName resolves a farmer id for display, tolerating ids that no longer
// resolve (they cannot occur through the mutation API, but a hand-edited
// snapshot may contain them).
func (w *Warehouse) FarmerName(id int) string {
	if f, ok := w.farmers[id]; ok {
		return f.Name
	}
	return "unknown"
}

// TypeStats aggregates purchases of one product type.
type TypeStats struct {
	Purchases  int
	QuantityKg Quantity
	Cost       Money
}

// FarmerReport summarizes all purchases from a single farmer.
type FarmerReport struct {
	Farmer        Farmer
	Purchases     int
	TotalKg       Quantity
	TotalCost     Money
	AveragePrice  Money // mean of the per-kg prices across purchases
	ByProductType map[ProductType]TypeStats
}

// ReportFarmer builds the purchase summary of one farmer.
func (w *Warehouse) ReportFarmer(id int) (FarmerReport, error) {
	farmer, ok := w.farmers[id]
	if !ok {
		return FarmerReport{}, &NotFoundError{Kind: "farmer", ID: strconv.Itoa(id)}
	}
	report := FarmerReport{Farmer: farmer, ByProductType: make(map[ProductType]TypeStats)}
	var priceSum Money
	for _, p := range w.purchases {
		if p.FarmerID != id {
			continue
		}
		report.Purchases++
		report.TotalKg = report.TotalKg.Add(p.Quantity.Kg())
		report.TotalCost = report.TotalCost.Add(p.TotalCost())
		priceSum = priceSum.Add(p.PricePerKg)

		stats := report.ByProductType[p.ProductType]
		stats.Purchases++
		stats.QuantityKg = stats.QuantityKg.Add(p.Quantity.Kg())
		stats.Cost = stats.Cost.Add(p.TotalCost())
		report.ByProductType[p.ProductType] = stats
	}
	if report.Purchases > 0 {
		report.AveragePrice = priceSum.Div(Q(report.Purchases))
	}
	return report, nil
}

// RangeReport summarizes purchases within a date range.
type RangeReport struct {
	Range         date.Range
	Purchases     int
	TotalKg       Quantity
	TotalCost     Money
	AveragePrice  Money
	ByProductType map[ProductType]TypeStats
	ByFarmer      map[string]TypeStats // keyed by farmer name
}

// ReportRange builds the purchase summary of a date range.
func (w *Warehouse) ReportRange(r date.Range) RangeReport {
	report := RangeReport{
		Range:         r,
		ByProductType: make(map[ProductType]TypeStats),
		ByFarmer:      make(map[string]TypeStats),
	}
	var priceSum Money
	for _, p := range w.purchases {
		if !r.Contains(p.Date) {
			continue
		}
		report.Purchases++
		report.TotalKg = report.TotalKg.Add(p.Quantity.Kg())
		report.TotalCost = report.TotalCost.Add(p.TotalCost())
		priceSum = priceSum.Add(p.PricePerKg)

		stats := report.ByProductType[p.ProductType]
		stats.Purchases++
		stats.QuantityKg = stats.QuantityKg.Add(p.Quantity.Kg())
		stats.Cost = stats.Cost.Add(p.TotalCost())
		report.ByProductType[p.ProductType] = stats

		name := w.FarmerName(p.FarmerID)
		byFarmer := report.ByFarmer[name]
		byFarmer.Purchases++
		byFarmer.QuantityKg = byFarmer.QuantityKg.Add(p.Quantity.Kg())
		byFarmer.Cost = byFarmer.Cost.Add(p.TotalCost())
		report.ByFarmer[name] = byFarmer
	}
	if report.Purchases > 0 {
		report.AveragePrice = priceSum.Div(Q(report.Purchases))
	}
	return report
}

// LowStock flags a category whose packaged stock fell below its minimum.
type LowStock struct {
	Category Category
	Count    int
	Minimum  int
}

// LowStockReport lists the categories at or below their minimum-stock
// threshold, in display order. Used only for display; thresholds never block
// operations.
func (w *Warehouse) LowStockReport() []LowStock {
	var low []LowStock
	for _, c := range Categories() {
		if count := w.inventory.Processed(c); count <= w.inventory.MinimumStock(c) {
			low = append(low, LowStock{Category: c, Count: count, Minimum: w.inventory.MinimumStock(c)})
		}
	}
	return low
}

// PriceRow is one line of the price table view.
type PriceRow struct {
	Category    Category
	Price       Money
	PackageSize Grams
	PricePerKg  Money // derived: price / packageSize x 1000; zero when size unset
}

// PriceTable builds the price table view in display order.
func (w *Warehouse) PriceTable() []PriceRow {
	rows := make([]PriceRow, 0, len(w.prices))
	for _, c := range Categories() {
		row := PriceRow{Category: c, Price: w.prices[c], PackageSize: w.inventory.PackageSize(c)}
		if row.PackageSize > 0 {
			row.PricePerKg = row.Price.Div(row.PackageSize.Kg())
		}
		rows = append(rows, row)
	}
	return rows
}
