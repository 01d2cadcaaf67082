package warehouse

import (
	"bytes"
	"strings"
	"testing"
)

// fullWarehouse builds a warehouse exercising every snapshot section.
func fullWarehouse(t *testing.T) *Warehouse {
	t.Helper()
	w := stockedWarehouse(t)
	if err := w.SetPremiumPackageSize(1500); err != nil {
		t.Fatalf("SetPremiumPackageSize() error: %v", err)
	}
	if err := w.UpdateProductPrice(Large, M(19.90)); err != nil {
		t.Fatalf("UpdateProductPrice() error: %v", err)
	}
	if _, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 20, day("2025-06-10")); err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}
	return w
}

func TestSnapshotRoundTrip(t *testing.T) {
	w := fullWarehouse(t)

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, w); err != nil {
		t.Fatalf("EncodeSnapshot() error: %v", err)
	}
	back, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error: %v", err)
	}

	// Logs and ledger survive the round trip.
	if got, want := len(back.Farmers()), len(w.Farmers()); got != want {
		t.Errorf("farmers = %d, want %d", got, want)
	}
	if got, want := len(back.Purchases()), len(w.Purchases()); got != want {
		t.Errorf("purchases = %d, want %d", got, want)
	}
	if got, want := len(back.Orders()), len(w.Orders()); got != want {
		t.Errorf("orders = %d, want %d", got, want)
	}
	if got := back.Inventory().UnprocessedGrams(Fresh); got != 5000 {
		t.Errorf("UnprocessedGrams(Fresh) = %v, want 5000g", got)
	}
	if got := back.Inventory().Processed(Small); got != 30 {
		t.Errorf("Processed(Small) = %d, want 30", got)
	}
	// The configured premium size survives the restart.
	if got := back.Inventory().PackageSize(Premium); got != 1500 {
		t.Errorf("PackageSize(Premium) = %v, want 1500g", got)
	}
	if price, _ := back.Price(Large); !price.Equal(M(19.90)) {
		t.Errorf("Price(Large) = %v, want %v", price, M(19.90))
	}

	// Financials come back recomputed, not trusted from the file.
	if !back.Financials().TotalRevenue.Equal(w.Financials().TotalRevenue) {
		t.Errorf("TotalRevenue = %v, want %v", back.Financials().TotalRevenue, w.Financials().TotalRevenue)
	}

	// Id allocation resumes past the existing ids.
	id, err := back.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 1, day("2025-06-11"))
	if err != nil {
		t.Fatalf("CreateOrder() after restore error: %v", err)
	}
	if id != 2 {
		t.Errorf("next order id = %d, want 2", id)
	}
}

func TestSnapshotIsDeterministic(t *testing.T) {
	w := fullWarehouse(t)

	var a, b bytes.Buffer
	if err := EncodeSnapshot(&a, w); err != nil {
		t.Fatalf("EncodeSnapshot() error: %v", err)
	}
	if err := EncodeSnapshot(&b, w); err != nil {
		t.Fatalf("EncodeSnapshot() error: %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("two encodings of the same warehouse differ")
	}
}

func TestDecodeSnapshotRejectsUnknownKeys(t *testing.T) {
	w := fullWarehouse(t)
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, w); err != nil {
		t.Fatalf("EncodeSnapshot() error: %v", err)
	}
	doctored := strings.Replace(buf.String(), `"farmers"`, `"sneaky": 1, "farmers"`, 1)

	if _, err := DecodeSnapshot(strings.NewReader(doctored)); err == nil {
		t.Errorf("unknown keys should be rejected")
	}
}

func TestRestoreRejectsMalformedSnapshots(t *testing.T) {
	base := fullWarehouse(t).Snapshot()

	t.Run("duplicate farmer id", func(t *testing.T) {
		s := base
		s.Farmers = append([]Farmer{}, base.Farmers...)
		s.Farmers = append(s.Farmers, s.Farmers[0])
		if _, err := Restore(s); err == nil {
			t.Errorf("duplicate farmer ids should be rejected")
		}
	})

	t.Run("dangling purchase farmer", func(t *testing.T) {
		s := base
		s.Purchases = append([]Purchase{}, base.Purchases...)
		s.Purchases[0].FarmerID = 99
		if _, err := Restore(s); err == nil {
			t.Errorf("a purchase referencing an unknown farmer should be rejected")
		}
	})

	t.Run("negative pool", func(t *testing.T) {
		s := base
		s.Inventory.UnprocessedByType = map[ProductType]Grams{Fresh: -1}
		if _, err := Restore(s); err == nil {
			t.Errorf("negative pool balances should be rejected")
		}
	})

	t.Run("non positive price", func(t *testing.T) {
		s := base
		s.ProductPrices = map[Category]Money{Small: M(0)}
		if _, err := Restore(s); err == nil {
			t.Errorf("non-positive prices should be rejected")
		}
	})
}

func TestRestoreKeepsOrderPricesAsPersisted(t *testing.T) {
	w := fullWarehouse(t)
	snapshot := w.Snapshot()

	// Re-pricing after the order was created must not leak into the restored
	// order: its total was fixed at creation time.
	back, err := Restore(snapshot)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	order, _ := back.Order(1)
	if want := M(100.00); !order.TotalPrice.Equal(want) {
		t.Errorf("TotalPrice = %v, want %v as persisted", order.TotalPrice, want)
	}
}
