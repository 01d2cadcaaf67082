package warehouse

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/seyda/warehouse/date"
)

// This file imports the legacy snapshot format: the JSON document the old
// browser tool kept in local storage. That format was duck-typed and merged
// structurally on load; here it is converted explicitly into a typed
// Snapshot and then restored through the usual strict validation.

// ImportLegacy reads a legacy browser-export document and rebuilds a
// warehouse from it. Financial aggregates in the document are ignored and
// recomputed from the logs.
func ImportLegacy(r io.Reader) (*Warehouse, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read legacy document: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse legacy document: %w", err)
	}

	var s Snapshot
	s.ProductPrices = make(map[Category]Money)
	s.Inventory = InventorySnapshot{
		UnprocessedByType: make(map[ProductType]Grams),
		Processed:         make(map[Category]int),
	}

	// Farmers were keyed by id in an object, not a list.
	farmers, err := legacyObject(jobj, "$.farmers")
	if err != nil {
		return nil, err
	}
	for id, v := range farmers {
		fid, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("legacy farmer id %q: %w", id, err)
		}
		f, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("legacy farmer %q: not an object", id)
		}
		s.Farmers = append(s.Farmers, Farmer{
			ID:    fid,
			Name:  str(f["name"]),
			Phone: str(f["phone"]),
			Email: str(f["email"]),
			City:  str(f["city"]),
		})
	}

	purchases, err := legacyList(jobj, "$.purchases")
	if err != nil {
		return nil, err
	}
	for i, v := range purchases {
		p, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("legacy purchase %d: not an object", i)
		}
		on, err := legacyDate(str(p["date"]))
		if err != nil {
			return nil, fmt.Errorf("legacy purchase %d: %w", i, err)
		}
		s.Purchases = append(s.Purchases, Purchase{
			ID:          num(p["id"]),
			FarmerID:    num(p["farmerId"]),
			ProductType: ProductType(str(p["productType"])),
			Quantity:    Grams(num64(p["quantity"])), // already grams in the legacy format
			PricePerKg:  M(f64(p["pricePerKg"])),
			Date:        on,
		})
	}

	orders, err := legacyList(jobj, "$.orders")
	if err != nil {
		return nil, err
	}
	for i, v := range orders {
		o, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("legacy order %d: not an object", i)
		}
		on, err := legacyDate(str(o["date"]))
		if err != nil {
			return nil, fmt.Errorf("legacy order %d: %w", i, err)
		}
		s.Orders = append(s.Orders, Order{
			ID:           num(o["id"]),
			CustomerName: str(o["customerName"]),
			Contact:      str(o["contact"]),
			ShippingInfo: str(o["shippingInfo"]),
			Category:     Category(str(o["category"])),
			Quantity:     num(o["quantity"]),
			Date:         on,
			Status:       Status(str(o["status"])),
			TotalPrice:   M(f64(o["totalPrice"])),
			Tax:          M(f64(o["tax"])),
		})
	}

	unprocessed, err := legacyObject(jobj, "$.inventory.unprocessedByType")
	if err != nil {
		return nil, err
	}
	for t, g := range unprocessed {
		s.Inventory.UnprocessedByType[ProductType(t)] = Grams(num64(g))
	}
	processed, err := legacyObject(jobj, "$.inventory.processed")
	if err != nil {
		return nil, err
	}
	for c, count := range processed {
		s.Inventory.Processed[Category(c)] = num(count)
	}

	prices, err := legacyObject(jobj, "$.productPrices")
	if err != nil {
		return nil, err
	}
	for c, p := range prices {
		s.ProductPrices[Category(c)] = M(f64(p))
	}

	return Restore(s)
}

// legacyObject extracts a JSON object at a jsonpath.
func legacyObject(jobj any, path string) (map[string]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("legacy document: missing %s: %w", path, err)
	}
	obj, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("legacy document: %s is not an object", path)
	}
	return obj, nil
}

// legacyList extracts a JSON array at a jsonpath.
func legacyList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("legacy document: missing %s: %w", path, err)
	}
	list, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("legacy document: %s is not a list", path)
	}
	return list, nil
}

// legacyDate parses the legacy ISO timestamp (e.g. "2024-03-05T10:00:00.000Z")
// down to day granularity.
func legacyDate(value string) (Date, error) {
	if len(value) > len(date.DateFormat) {
		value = value[:len(date.DateFormat)]
	}
	return date.Parse(value)
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func f64(v any) float64 {
	f, _ := v.(float64)
	return f
}

func num(v any) int { return int(f64(v)) }

func num64(v any) int64 { return int64(f64(v)) }
