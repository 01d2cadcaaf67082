package warehouse

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// this file contains functions to handle the export format.
// It should remain human readable and easy to open in a spreadsheet.

// ExportPurchasesCSV writes the purchase log as CSV, one purchase per row.
func ExportPurchasesCSV(out io.Writer, w *Warehouse) error {
	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"id", "farmer", "productType", "quantityKg", "pricePerKg", "totalCost", "date"}); err != nil {
		return fmt.Errorf("cannot write purchases export: %w", err)
	}
	for _, p := range w.Purchases() {
		record := []string{
			strconv.Itoa(p.ID),
			w.FarmerName(p.FarmerID),
			string(p.ProductType),
			p.Quantity.Kg().String(),
			p.PricePerKg.String(),
			p.TotalCost().String(),
			p.Date.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write purchases export: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportOrdersCSV writes the order log as CSV, one order per row.
func ExportOrdersCSV(out io.Writer, w *Warehouse) error {
	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"id", "customer", "contact", "category", "quantity", "totalPrice", "tax", "status", "date"}); err != nil {
		return fmt.Errorf("cannot write orders export: %w", err)
	}
	for _, o := range w.Orders() {
		record := []string{
			strconv.Itoa(o.ID),
			o.CustomerName,
			o.Contact,
			string(o.Category),
			strconv.Itoa(o.Quantity),
			o.TotalPrice.String(),
			o.Tax.String(),
			string(o.Status),
			o.Date.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write orders export: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
