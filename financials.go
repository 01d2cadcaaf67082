package warehouse

// PeriodStats is the financial rollup of a single month or year bucket.
type PeriodStats struct {
	Revenue  Money `json:"revenue"`
	Expenses Money `json:"expenses"`
	Profit   Money `json:"profit"`
}

// Financials are the aggregates derived from the purchase and order logs.
// They are recomputed from scratch after every mutation, never patched
// incrementally, so recomputing twice in a row yields identical output.
type Financials struct {
	TotalRevenue  Money    `json:"totalRevenue"`
	TotalExpenses Money    `json:"totalExpenses"`
	TaxLiability  Money    `json:"taxLiability"`
	NetProfit     Money    `json:"netProfit"`
	TaxRate       Quantity `json:"taxRate"`
	// MonthlyStats and YearlyStats are keyed by "YYYY-MM" and "YYYY".
	MonthlyStats map[string]PeriodStats `json:"monthlyStats"`
	YearlyStats  map[string]PeriodStats `json:"yearlyStats"`
}

// defaultTaxRate is applied to order totals and to positive gross profits.
var defaultTaxRate = Q(0.20)

func newFinancials(taxRate Quantity) Financials {
	return Financials{
		TaxRate:      taxRate,
		MonthlyStats: make(map[string]PeriodStats),
		YearlyStats:  make(map[string]PeriodStats),
	}
}

// recompute performs the full O(purchases+orders) scan. Acceptable at the
// expected scale; this is deliberately not an incremental design.
func (f *Financials) recompute(purchases []Purchase, orders []Order) {
	f.TotalRevenue = M(0)
	f.TotalExpenses = M(0)
	f.TaxLiability = M(0)
	f.MonthlyStats = make(map[string]PeriodStats)
	f.YearlyStats = make(map[string]PeriodStats)

	for _, p := range purchases {
		cost := p.TotalCost()
		f.TotalExpenses = f.TotalExpenses.Add(cost)

		m := f.MonthlyStats[p.Date.MonthKey()]
		m.Expenses = m.Expenses.Add(cost)
		f.MonthlyStats[p.Date.MonthKey()] = m

		y := f.YearlyStats[p.Date.YearKey()]
		y.Expenses = y.Expenses.Add(cost)
		f.YearlyStats[p.Date.YearKey()] = y
	}

	for _, o := range orders {
		f.TotalRevenue = f.TotalRevenue.Add(o.TotalPrice)
		f.TaxLiability = f.TaxLiability.Add(o.Tax)

		m := f.MonthlyStats[o.Date.MonthKey()]
		m.Revenue = m.Revenue.Add(o.TotalPrice)
		f.MonthlyStats[o.Date.MonthKey()] = m

		y := f.YearlyStats[o.Date.YearKey()]
		y.Revenue = y.Revenue.Add(o.TotalPrice)
		f.YearlyStats[o.Date.YearKey()] = y
	}

	f.NetProfit = f.TotalRevenue.Sub(f.TotalExpenses).Sub(f.TaxLiability)

	for key, stats := range f.MonthlyStats {
		stats.Profit = f.periodProfit(stats)
		f.MonthlyStats[key] = stats
	}
	for key, stats := range f.YearlyStats {
		stats.Profit = f.periodProfit(stats)
		f.YearlyStats[key] = stats
	}
}

// periodProfit applies tax only on a positive gross profit; losses are not
// tax-offset.
func (f *Financials) periodProfit(stats PeriodStats) Money {
	gross := stats.Revenue.Sub(stats.Expenses)
	if gross.IsPositive() {
		return gross.Sub(gross.Mul(f.TaxRate))
	}
	return gross
}

// MarshalJSON keeps the snapshot field order deterministic.
func (f Financials) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("totalRevenue", f.TotalRevenue)
	w.Append("totalExpenses", f.TotalExpenses)
	w.Append("taxLiability", f.TaxLiability)
	w.Append("netProfit", f.NetProfit)
	w.Append("taxRate", f.TaxRate)
	w.Append("monthlyStats", f.MonthlyStats)
	w.Append("yearlyStats", f.YearlyStats)
	return w.MarshalJSON()
}
