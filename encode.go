package warehouse

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeSnapshot writes the warehouse state as an indented JSON snapshot.
// The field order is deterministic so the file diffs cleanly under version
// control.
func EncodeSnapshot(w io.Writer, v *Warehouse) error {
	data, err := json.MarshalIndent(v.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// purchaseDoc is a specialized struct for decoding the snapshot purchase
// shape, which carries the derived totalCost field for readability.
type purchaseDoc struct {
	ID          int         `json:"id"`
	FarmerID    int         `json:"farmerId"`
	ProductType ProductType `json:"productType"`
	Quantity    Grams       `json:"quantity"` // grams
	PricePerKg  Money       `json:"pricePerKg"`
	Date        Date        `json:"date"`
	TotalCost   Money       `json:"totalCost"` // derived, recomputed on restore
}

// snapshotDoc mirrors Snapshot for strict decoding.
type snapshotDoc struct {
	Farmers       []Farmer           `json:"farmers"`
	Purchases     []purchaseDoc      `json:"purchases"`
	Inventory     InventorySnapshot  `json:"inventory"`
	Orders        []Order            `json:"orders"`
	ProductPrices map[Category]Money `json:"productPrices"`
	Financials    Financials         `json:"financials"`
}

// DecodeSnapshot reads a JSON snapshot and rebuilds the warehouse. Decoding
// is strict: unknown keys are rejected rather than structurally merged, and
// every field is re-validated by Restore.
func DecodeSnapshot(r io.Reader) (*Warehouse, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc snapshotDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}

	s := Snapshot{
		Farmers:       doc.Farmers,
		Inventory:     doc.Inventory,
		Orders:        doc.Orders,
		ProductPrices: doc.ProductPrices,
		Financials:    doc.Financials,
	}
	for _, p := range doc.Purchases {
		s.Purchases = append(s.Purchases, Purchase{
			ID:          p.ID,
			FarmerID:    p.FarmerID,
			ProductType: p.ProductType,
			Quantity:    p.Quantity,
			PricePerKg:  p.PricePerKg,
			Date:        p.Date,
		})
	}
	return Restore(s)
}
