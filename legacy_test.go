package warehouse

import (
	"strings"
	"testing"
)

const legacyDoc = `{
  "farmers": {
    "1": {"id": 1, "name": "Ayşe Kaya", "phone": "05321234567", "email": "ayse@example.com", "city": "Giresun"},
    "2": {"id": 2, "name": "Ali Demir", "phone": "05329876543", "email": "ali@example.com", "city": "Ordu"}
  },
  "purchases": [
    {"id": 1, "farmerId": 1, "productType": "fresh", "quantity": 10000, "pricePerKg": 4, "date": "2025-06-01T10:30:00.000Z", "totalCost": 40}
  ],
  "orders": [
    {"id": 1, "customerName": "Veli Çelik", "contact": "05551112233", "shippingInfo": "Atatürk Blv. 5, Düzce", "category": "small", "quantity": 20, "date": "2025-06-10T08:00:00.000Z", "status": "Pending", "totalPrice": 100, "tax": 20}
  ],
  "inventory": {
    "unprocessedByType": {"fresh": 5000, "frozen": 0, "organic": 0},
    "processed": {"small": 30, "medium": 0, "large": 0, "extra-large": 0, "family-pack": 0, "bulk-pack": 0, "premium": 0}
  },
  "productPrices": {"small": 5, "medium": 10, "large": 18, "extra-large": 30, "family-pack": 50, "bulk-pack": 100, "premium": 75},
  "financials": {"totalRevenue": 999, "totalExpenses": 999}
}`

func TestImportLegacy(t *testing.T) {
	w, err := ImportLegacy(strings.NewReader(legacyDoc))
	if err != nil {
		t.Fatalf("ImportLegacy() error: %v", err)
	}

	if got := len(w.Farmers()); got != 2 {
		t.Errorf("farmers = %d, want 2", got)
	}
	farmer, ok := w.Farmer(2)
	if !ok || farmer.Name != "Ali Demir" {
		t.Errorf("Farmer(2) = %+v, want Ali Demir", farmer)
	}

	purchase, ok := w.Purchase(1)
	if !ok {
		t.Fatalf("Purchase(1) not found")
	}
	// Legacy quantities are already grams, and timestamps are truncated to days.
	if purchase.Quantity != 10000 {
		t.Errorf("Quantity = %v, want 10000g", purchase.Quantity)
	}
	if got := purchase.Date.String(); got != "2025-06-01" {
		t.Errorf("Date = %q, want %q", got, "2025-06-01")
	}

	order, ok := w.Order(1)
	if !ok {
		t.Fatalf("Order(1) not found")
	}
	if want := M(100); !order.TotalPrice.Equal(want) {
		t.Errorf("TotalPrice = %v, want %v", order.TotalPrice, want)
	}

	if got := w.Inventory().UnprocessedGrams(Fresh); got != 5000 {
		t.Errorf("UnprocessedGrams(Fresh) = %v, want 5000g", got)
	}
	if got := w.Inventory().Processed(Small); got != 30 {
		t.Errorf("Processed(Small) = %d, want 30", got)
	}

	// Financial aggregates are recomputed from the logs, not trusted.
	if want := M(100); !w.Financials().TotalRevenue.Equal(want) {
		t.Errorf("TotalRevenue = %v, want %v recomputed", w.Financials().TotalRevenue, want)
	}
	if want := M(40); !w.Financials().TotalExpenses.Equal(want) {
		t.Errorf("TotalExpenses = %v, want %v recomputed", w.Financials().TotalExpenses, want)
	}

	// Id allocation resumes after the imported ids.
	id, err := w.AddFarmer("Can Yılmaz", "05321112233", "can@example.com", "Trabzon")
	if err != nil {
		t.Fatalf("AddFarmer() error: %v", err)
	}
	if id != 3 {
		t.Errorf("next farmer id = %d, want 3", id)
	}
}

func TestImportLegacyRejectsGarbage(t *testing.T) {
	if _, err := ImportLegacy(strings.NewReader("not json")); err == nil {
		t.Errorf("invalid JSON should be rejected")
	}
	if _, err := ImportLegacy(strings.NewReader(`{"farmers": []}`)); err == nil {
		t.Errorf("a document with the wrong shape should be rejected")
	}
}
