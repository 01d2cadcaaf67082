package warehouse

import (
	"testing"

	"github.com/seyda/warehouse/date"
)

// day is a test helper to build dates from consts.
func day(s string) Date { return date.MustParse(s) }

// testWarehouse creates a warehouse with one registered farmer (id 1).
func testWarehouse(t *testing.T) *Warehouse {
	t.Helper()
	w := New()
	if _, err := w.AddFarmer("Ayşe Kaya", "05321234567", "ayse@example.com", "Giresun"); err != nil {
		t.Fatalf("AddFarmer() error: %v", err)
	}
	return w
}

// stockedWarehouse creates a warehouse with one farmer, 10 kg of fresh stock
// and 50 small packages already processed.
func stockedWarehouse(t *testing.T) *Warehouse {
	t.Helper()
	w := testWarehouse(t)
	if _, err := w.RecordPurchase(1, Fresh, Q(10), M(4.00), day("2025-06-01")); err != nil {
		t.Fatalf("RecordPurchase() error: %v", err)
	}
	if err := w.ProcessInventory(Fresh, Small, 50); err != nil {
		t.Fatalf("ProcessInventory() error: %v", err)
	}
	return w
}
