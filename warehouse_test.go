package warehouse

import (
	"errors"
	"testing"
)

func TestRecordPurchase(t *testing.T) {
	w := testWarehouse(t)

	id, err := w.RecordPurchase(1, Fresh, Q(10), M(4.00), day("2025-06-01"))
	if err != nil {
		t.Fatalf("RecordPurchase() error: %v", err)
	}
	purchase, ok := w.Purchase(id)
	if !ok {
		t.Fatalf("Purchase(%d) not found", id)
	}

	// Kilograms are stored as grams.
	if purchase.Quantity != 10000 {
		t.Errorf("Quantity = %v, want 10000g", purchase.Quantity)
	}
	if got := w.Inventory().UnprocessedGrams(Fresh); got != 10000 {
		t.Errorf("UnprocessedGrams(Fresh) = %v, want 10000g", got)
	}
	// totalCost = (pricePerKg / 1000) x grams.
	if want := M(40.00); !purchase.TotalCost().Equal(want) {
		t.Errorf("TotalCost() = %v, want %v", purchase.TotalCost(), want)
	}
}

func TestRecordPurchaseFractionalKg(t *testing.T) {
	w := testWarehouse(t)

	id, err := w.RecordPurchase(1, Organic, Q(2.5), M(8.00), day("2025-06-01"))
	if err != nil {
		t.Fatalf("RecordPurchase() error: %v", err)
	}
	purchase, _ := w.Purchase(id)
	if purchase.Quantity != 2500 {
		t.Errorf("Quantity = %v, want 2500g", purchase.Quantity)
	}
	if want := M(20.00); !purchase.TotalCost().Equal(want) {
		t.Errorf("TotalCost() = %v, want %v", purchase.TotalCost(), want)
	}
}

func TestRecordPurchaseValidation(t *testing.T) {
	w := testWarehouse(t)

	if _, err := w.RecordPurchase(99, Fresh, Q(1), M(1), day("2025-06-01")); err == nil {
		t.Errorf("unknown farmer should be rejected")
	}
	if _, err := w.RecordPurchase(1, "stale", Q(1), M(1), day("2025-06-01")); err == nil {
		t.Errorf("unknown product type should be rejected")
	}
	if _, err := w.RecordPurchase(1, Fresh, Q(0), M(1), day("2025-06-01")); err == nil {
		t.Errorf("zero quantity should be rejected")
	}
	if _, err := w.RecordPurchase(1, Fresh, Q(1), M(0), day("2025-06-01")); err == nil {
		t.Errorf("zero price should be rejected")
	}
}

func TestUpdatePurchaseReconcilesThePool(t *testing.T) {
	w := testWarehouse(t)
	id, err := w.RecordPurchase(1, Fresh, Q(10), M(4.00), day("2025-06-01"))
	if err != nil {
		t.Fatalf("RecordPurchase() error: %v", err)
	}

	// Move the purchase to another pool: fresh is debited, organic credited.
	if err := w.UpdatePurchase(id, PurchaseUpdate{ProductType: Organic}); err != nil {
		t.Fatalf("UpdatePurchase() error: %v", err)
	}
	if got := w.Inventory().UnprocessedGrams(Fresh); got != 0 {
		t.Errorf("UnprocessedGrams(Fresh) = %v, want 0g", got)
	}
	if got := w.Inventory().UnprocessedGrams(Organic); got != 10000 {
		t.Errorf("UnprocessedGrams(Organic) = %v, want 10000g", got)
	}
}

func TestUpdatePurchaseRejectedWhenConsumed(t *testing.T) {
	w := stockedWarehouse(t) // 10 kg bought, 5000g already processed

	// Halving the purchase would drive the pool to -1000g.
	err := w.UpdatePurchase(1, PurchaseUpdate{Kg: Q(4)})
	var serr *InsufficientStockError
	if !errors.As(err, &serr) {
		t.Fatalf("UpdatePurchase() = %v, want an InsufficientStockError", err)
	}
	// Nothing changed.
	purchase, _ := w.Purchase(1)
	if purchase.Quantity != 10000 {
		t.Errorf("Quantity = %v, want 10000g untouched", purchase.Quantity)
	}
	if got := w.Inventory().UnprocessedGrams(Fresh); got != 5000 {
		t.Errorf("UnprocessedGrams(Fresh) = %v, want 5000g untouched", got)
	}
}

func TestDeletePurchase(t *testing.T) {
	w := testWarehouse(t)
	id, err := w.RecordPurchase(1, Fresh, Q(10), M(4.00), day("2025-06-01"))
	if err != nil {
		t.Fatalf("RecordPurchase() error: %v", err)
	}

	if err := w.DeletePurchase(id); err != nil {
		t.Fatalf("DeletePurchase() error: %v", err)
	}
	if got := w.Inventory().UnprocessedGrams(Fresh); got != 0 {
		t.Errorf("UnprocessedGrams(Fresh) = %v, want 0g", got)
	}
	if _, ok := w.Purchase(id); ok {
		t.Errorf("Purchase(%d) still present after delete", id)
	}

	// Deleting a consumed purchase is rejected.
	w2 := stockedWarehouse(t)
	if err := w2.DeletePurchase(1); err == nil {
		t.Errorf("deleting a partially consumed purchase should be rejected")
	}
}

func TestDeleteFarmerReferenced(t *testing.T) {
	w := stockedWarehouse(t)
	if err := w.DeleteFarmer(1); err == nil {
		t.Errorf("deleting a farmer with recorded purchases should be rejected")
	}

	w2 := testWarehouse(t)
	if err := w2.DeleteFarmer(1); err != nil {
		t.Errorf("deleting an unreferenced farmer failed: %v", err)
	}
}

func TestUpdateFarmerKeepsOmittedFields(t *testing.T) {
	w := testWarehouse(t)
	if err := w.UpdateFarmer(1, "", "", "", "Ordu"); err != nil {
		t.Fatalf("UpdateFarmer() error: %v", err)
	}
	farmer, _ := w.Farmer(1)
	if farmer.Name != "Ayşe Kaya" || farmer.City != "Ordu" {
		t.Errorf("UpdateFarmer() = %+v, want name kept and city updated", farmer)
	}

	if err := w.UpdateFarmer(1, "X1", "", "", ""); err == nil {
		t.Errorf("invalid replacement name should be rejected")
	}
}

func TestCreateOrderReservesStock(t *testing.T) {
	w := stockedWarehouse(t) // 50 small packages

	id, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 20, day("2025-06-10"))
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}
	if got := w.Inventory().Processed(Small); got != 30 {
		t.Errorf("Processed(Small) = %d, want 30 after reservation", got)
	}
	order, _ := w.Order(id)
	if order.Status != Pending {
		t.Errorf("Status = %v, want %v", order.Status, Pending)
	}
	// 20 x 5.00 = 100.00 total, 20.00 tax on top.
	if want := M(100.00); !order.TotalPrice.Equal(want) {
		t.Errorf("TotalPrice = %v, want %v", order.TotalPrice, want)
	}
	if want := M(20.00); !order.Tax.Equal(want) {
		t.Errorf("Tax = %v, want %v", order.Tax, want)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	w := stockedWarehouse(t) // 50 small packages

	_, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 60, day("2025-06-10"))
	var serr *InsufficientStockError
	if !errors.As(err, &serr) {
		t.Fatalf("CreateOrder() = %v, want an InsufficientStockError", err)
	}
	if got := w.Inventory().Processed(Small); got != 50 {
		t.Errorf("Processed(Small) = %d, want 50 untouched", got)
	}
	if len(w.Orders()) != 0 {
		t.Errorf("no order should be recorded on failure")
	}
}

func TestUpdateOrderReReserves(t *testing.T) {
	w := stockedWarehouse(t)
	if err := w.ProcessInventory(Fresh, Medium, 10); err != nil { // 2500g more
		t.Fatalf("ProcessInventory() error: %v", err)
	}
	id, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 20, day("2025-06-10"))
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}

	// Switch the order to 5 medium packs: small stock comes back, medium shrinks.
	if err := w.UpdateOrder(id, OrderUpdate{Category: Medium, Quantity: 5}); err != nil {
		t.Fatalf("UpdateOrder() error: %v", err)
	}
	if got := w.Inventory().Processed(Small); got != 50 {
		t.Errorf("Processed(Small) = %d, want 50 returned", got)
	}
	if got := w.Inventory().Processed(Medium); got != 5 {
		t.Errorf("Processed(Medium) = %d, want 5", got)
	}
	order, _ := w.Order(id)
	if want := M(50.00); !order.TotalPrice.Equal(want) { // 5 x 10.00
		t.Errorf("TotalPrice = %v, want %v", order.TotalPrice, want)
	}
}

func TestUpdateOrderRollsBackOnInsufficiency(t *testing.T) {
	w := stockedWarehouse(t)
	id, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 20, day("2025-06-10"))
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}

	// 40 small packs are not available (30 in stock after the reservation),
	// even counting the 20 the order would give back.
	err = w.UpdateOrder(id, OrderUpdate{Quantity: 60})
	var serr *InsufficientStockError
	if !errors.As(err, &serr) {
		t.Fatalf("UpdateOrder() = %v, want an InsufficientStockError", err)
	}

	// The original reservation is restored and the order unchanged.
	if got := w.Inventory().Processed(Small); got != 30 {
		t.Errorf("Processed(Small) = %d, want 30 restored", got)
	}
	order, _ := w.Order(id)
	if order.Quantity != 20 {
		t.Errorf("Quantity = %d, want 20 untouched", order.Quantity)
	}
}

func TestPriceChangeDoesNotTouchExistingOrders(t *testing.T) {
	w := stockedWarehouse(t)
	id, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 10, day("2025-06-10"))
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}

	if err := w.UpdateProductPrice(Small, M(7.50)); err != nil {
		t.Fatalf("UpdateProductPrice() error: %v", err)
	}

	order, _ := w.Order(id)
	if want := M(50.00); !order.TotalPrice.Equal(want) {
		t.Errorf("TotalPrice = %v, want %v kept from creation time", order.TotalPrice, want)
	}

	// A new order uses the new price.
	id2, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 10, day("2025-06-11"))
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}
	order2, _ := w.Order(id2)
	if want := M(75.00); !order2.TotalPrice.Equal(want) {
		t.Errorf("TotalPrice = %v, want %v at the new price", order2.TotalPrice, want)
	}
}

func TestUpdateProductPriceValidation(t *testing.T) {
	w := New()
	if err := w.UpdateProductPrice(Small, M(0)); err == nil {
		t.Errorf("zero price should be rejected")
	}
	var perr *InvalidPriceError
	if err := w.UpdateProductPrice(Small, M(-3)); !errors.As(err, &perr) {
		t.Errorf("UpdateProductPrice(-3) = %v, want an InvalidPriceError", err)
	}
	if err := w.UpdateProductPrice("gigantic", M(5)); err == nil {
		t.Errorf("unknown category should be rejected")
	}
}

func TestDeleteOrder(t *testing.T) {
	w := stockedWarehouse(t)
	id, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 20, day("2025-06-10"))
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}

	if err := w.DeleteOrder(id); err != nil {
		t.Fatalf("DeleteOrder() error: %v", err)
	}
	if got := w.Inventory().Processed(Small); got != 50 {
		t.Errorf("Processed(Small) = %d, want 50 returned", got)
	}
}

func TestDeleteDeliveredOrderForfeitsStock(t *testing.T) {
	w := stockedWarehouse(t)
	id, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 20, day("2025-06-10"))
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}
	if err := w.UpdateOrderStatus(id, Delivered); err != nil {
		t.Fatalf("UpdateOrderStatus() error: %v", err)
	}

	if err := w.DeleteOrder(id); err != nil {
		t.Fatalf("DeleteOrder() error: %v", err)
	}
	// Delivered stock has shipped, it does not come back.
	if got := w.Inventory().Processed(Small); got != 30 {
		t.Errorf("Processed(Small) = %d, want 30", got)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	w := stockedWarehouse(t)
	id, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 5, day("2025-06-10"))
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}

	// Transitions are advisory, backward ones included.
	for _, status := range []Status{Shipped, Pending, Delivered} {
		if err := w.UpdateOrderStatus(id, status); err != nil {
			t.Errorf("UpdateOrderStatus(%v) error: %v", status, err)
		}
	}
	if err := w.UpdateOrderStatus(id, "lost"); err == nil {
		t.Errorf("unknown status should be rejected")
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	w := testWarehouse(t)
	id1, err := w.AddFarmer("Ali Demir", "05329876543", "ali@example.com", "Ordu")
	if err != nil {
		t.Fatalf("AddFarmer() error: %v", err)
	}
	if err := w.DeleteFarmer(id1); err != nil {
		t.Fatalf("DeleteFarmer() error: %v", err)
	}
	id2, err := w.AddFarmer("Ali Demir", "05329876543", "ali@example.com", "Ordu")
	if err != nil {
		t.Fatalf("AddFarmer() error: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("farmer id %d reused after delete of %d", id2, id1)
	}
}
