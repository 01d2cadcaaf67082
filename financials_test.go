package warehouse

import (
	"reflect"
	"testing"
)

func TestFinancialsAggregates(t *testing.T) {
	w := stockedWarehouse(t) // 10 kg fresh at 4.00/kg → 40.00 expenses
	if _, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 20, day("2025-06-10")); err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}

	f := w.Financials()
	if want := M(100.00); !f.TotalRevenue.Equal(want) { // 20 x 5.00
		t.Errorf("TotalRevenue = %v, want %v", f.TotalRevenue, want)
	}
	if want := M(40.00); !f.TotalExpenses.Equal(want) {
		t.Errorf("TotalExpenses = %v, want %v", f.TotalExpenses, want)
	}
	if want := M(20.00); !f.TaxLiability.Equal(want) { // 20% of 100.00
		t.Errorf("TaxLiability = %v, want %v", f.TaxLiability, want)
	}
	if want := M(40.00); !f.NetProfit.Equal(want) { // 100 - 40 - 20
		t.Errorf("NetProfit = %v, want %v", f.NetProfit, want)
	}
}

func TestFinancialsPeriodBuckets(t *testing.T) {
	w := testWarehouse(t)
	if _, err := w.RecordPurchase(1, Fresh, Q(10), M(4.00), day("2025-05-20")); err != nil {
		t.Fatalf("RecordPurchase() error: %v", err)
	}
	if err := w.ProcessInventory(Fresh, Small, 50); err != nil {
		t.Fatalf("ProcessInventory() error: %v", err)
	}
	if _, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 20, day("2025-06-10")); err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}

	f := w.Financials()

	// May has only the purchase: a 40.00 loss, not tax-offset.
	may := f.MonthlyStats["2025-05"]
	if want := M(40.00); !may.Expenses.Equal(want) {
		t.Errorf("May Expenses = %v, want %v", may.Expenses, want)
	}
	if want := M(-40.00); !may.Profit.Equal(want) {
		t.Errorf("May Profit = %v, want %v", may.Profit, want)
	}

	// June has only the order: 100.00 gross, taxed at 20%.
	june := f.MonthlyStats["2025-06"]
	if want := M(100.00); !june.Revenue.Equal(want) {
		t.Errorf("June Revenue = %v, want %v", june.Revenue, want)
	}
	if want := M(80.00); !june.Profit.Equal(want) {
		t.Errorf("June Profit = %v, want %v", june.Profit, want)
	}

	// The year bucket nets both: 60.00 gross, taxed at 20%.
	year := f.YearlyStats["2025"]
	if want := M(48.00); !year.Profit.Equal(want) {
		t.Errorf("2025 Profit = %v, want %v", year.Profit, want)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	w := stockedWarehouse(t)
	if _, err := w.CreateOrder("Ali Demir", "05329876543", "Çark Cd. 12, Sakarya", Small, 20, day("2025-06-10")); err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}

	first := w.Financials()
	w.refresh()
	second := w.Financials()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("recompute is not idempotent:\n first = %+v\nsecond = %+v", first, second)
	}
}
