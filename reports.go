package produce

import (
	"slices"
	"strings"
	"time"
)

// DefaultLowStockThreshold is the stock level at or below which an item
// counts as low. It is a single configuration value: callers pass it (or
// an override) into the queries that need it, it is never re-defaulted at
// individual call sites.
const DefaultLowStockThreshold = 10

// ValueRow is one line of the inventory valuation breakdown.
type ValueRow struct {
	Name     string
	Category string
	Quantity int64
	Unit     string
	Price    Money
	Value    Money
}

// InventoryValue computes the total stock valuation and a per-item
// breakdown in name-sorted order. The result is recomputed from current
// item state on every call; nothing is cached.
func (l *Ledger) InventoryValue() (Money, []ValueRow) {
	var total Money
	var rows []ValueRow
	for item := range l.Items() {
		value := item.Value()
		total = total.Add(value)
		rows = append(rows, ValueRow{
			Name:     item.Name(),
			Category: item.Category(),
			Quantity: item.Quantity(),
			Unit:     item.Unit(),
			Price:    item.Price(),
			Value:    value,
		})
	}
	return total, rows
}

// CategorySummary is the per-category rollup of an inventory report.
type CategorySummary struct {
	Category string
	Items    int
	Value    Money
}

// Report aggregates the state of the whole ledger at one instant.
type Report struct {
	Date               time.Time
	Items              int
	TotalValue         Money
	TotalRevenue       Money
	LowStock           int               // items at or below the threshold
	LowStockThreshold  int64             // threshold the count was taken at
	Categories         []CategorySummary // sorted by category
	RecentTransactions int               // logged within the trailing 7 days of Date
}

// Report builds an inventory report as of now. The instant is passed in
// rather than read from the wall clock so the trailing seven-day
// transaction window is reproducible in tests.
func (l *Ledger) Report(now time.Time, threshold int64) *Report {
	total, rows := l.InventoryValue()

	byCategory := make(map[string]*CategorySummary)
	for _, row := range rows {
		key := Normalize(row.Category)
		s, ok := byCategory[key]
		if !ok {
			s = &CategorySummary{Category: row.Category}
			byCategory[key] = s
		}
		s.Items++
		s.Value = s.Value.Add(row.Value)
	}
	categories := make([]CategorySummary, 0, len(byCategory))
	for _, s := range byCategory {
		categories = append(categories, *s)
	}
	slices.SortFunc(categories, func(a, b CategorySummary) int {
		return strings.Compare(Normalize(a.Category), Normalize(b.Category))
	})

	recent := 0
	weekAgo := now.AddDate(0, 0, -7)
	for _, tx := range l.Transactions() {
		if !tx.Timestamp.Before(weekAgo) && !tx.Timestamp.After(now) {
			recent++
		}
	}

	return &Report{
		Date:               now,
		Items:              l.Len(),
		TotalValue:         total,
		TotalRevenue:       l.TotalRevenue(),
		LowStock:           len(l.LowStock(threshold)),
		LowStockThreshold:  threshold,
		Categories:         categories,
		RecentTransactions: recent,
	}
}
