package produce

import (
	"testing"
	"time"
)

// seedReportLedger builds a small mixed-category inventory with some
// history for the report tests.
func seedReportLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	add := func(name string, quantity int64, price float64, category string) {
		t.Helper()
		if _, err := l.AddItem(name, quantity, M(price), category, ""); err != nil {
			t.Fatalf("AddItem(%q) returned an unexpected error: %v", name, err)
		}
	}
	add("Tomato", 50, 1.5, "Vegetables")
	add("Carrot", 3, 1.0, "Vegetables")
	add("Apple", 8, 0.5, "Fruits")
	if _, err := l.RecordSale("Tomato", 10, ""); err != nil {
		t.Fatalf("RecordSale returned an unexpected error: %v", err)
	}
	return l
}

func TestLedger_InventoryValue(t *testing.T) {
	l := seedReportLedger(t)

	total, rows := l.InventoryValue()

	// 40×1.50 + 3×1.00 + 8×0.50
	if want := M(67.0); !total.Equal(want) {
		t.Errorf("total = %s, want %s", total, want)
	}
	wantRows := []struct {
		name  string
		value Money
	}{
		{"Apple", M(4.0)},
		{"Carrot", M(3.0)},
		{"Tomato", M(60.0)},
	}
	if len(rows) != len(wantRows) {
		t.Fatalf("got %d rows, want %d", len(rows), len(wantRows))
	}
	for i, want := range wantRows {
		if rows[i].Name != want.name {
			t.Errorf("rows[%d].Name = %q, want %q (name-sorted)", i, rows[i].Name, want.name)
		}
		if !rows[i].Value.Equal(want.value) {
			t.Errorf("rows[%d].Value = %s, want %s", i, rows[i].Value, want.value)
		}
	}
}

func TestLedger_InventoryValue_Empty(t *testing.T) {
	l := NewLedger()
	total, rows := l.InventoryValue()
	if !total.IsZero() {
		t.Errorf("total = %s on an empty ledger, want $0.00", total)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows on an empty ledger, want 0", len(rows))
	}
}

func TestLedger_Report(t *testing.T) {
	l := seedReportLedger(t)
	now := time.Now()

	r := l.Report(now, DefaultLowStockThreshold)

	if r.Items != 3 {
		t.Errorf("Items = %d, want 3", r.Items)
	}
	if want := M(67.0); !r.TotalValue.Equal(want) {
		t.Errorf("TotalValue = %s, want %s", r.TotalValue, want)
	}
	if want := M(15.0); !r.TotalRevenue.Equal(want) {
		t.Errorf("TotalRevenue = %s, want %s", r.TotalRevenue, want)
	}
	if r.LowStock != 2 { // Carrot (3) and Apple (8)
		t.Errorf("LowStock = %d, want 2", r.LowStock)
	}
	if r.LowStockThreshold != DefaultLowStockThreshold {
		t.Errorf("LowStockThreshold = %d, want %d", r.LowStockThreshold, DefaultLowStockThreshold)
	}
	// All four transactions were logged just now.
	if r.RecentTransactions != 4 {
		t.Errorf("RecentTransactions = %d, want 4", r.RecentTransactions)
	}

	wantCategories := []CategorySummary{
		{Category: "Fruits", Items: 1, Value: M(4.0)},
		{Category: "Vegetables", Items: 2, Value: M(63.0)},
	}
	if len(r.Categories) != len(wantCategories) {
		t.Fatalf("got %d categories, want %d", len(r.Categories), len(wantCategories))
	}
	for i, want := range wantCategories {
		got := r.Categories[i]
		if got.Category != want.Category || got.Items != want.Items || !got.Value.Equal(want.Value) {
			t.Errorf("Categories[%d] = %+v, want %+v", i, got, want)
		}
	}
}

func TestLedger_Report_CustomThreshold(t *testing.T) {
	l := seedReportLedger(t)
	r := l.Report(time.Now(), 3)
	if r.LowStock != 1 { // only Carrot at threshold 3
		t.Errorf("LowStock = %d at threshold 3, want 1", r.LowStock)
	}
	if r.LowStockThreshold != 3 {
		t.Errorf("LowStockThreshold = %d, want 3", r.LowStockThreshold)
	}
}

func TestLedger_Report_RecentTransactionWindow(t *testing.T) {
	l := NewLedger()
	now := time.Date(2025, time.August, 29, 12, 0, 0, 0, time.UTC)
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	for _, tc := range []struct {
		daysAgo int
	}{
		{0}, {3}, {7}, {8}, {30},
	} {
		tx, err := NewTransactionAt(TxSale, "Tomato", 1, M(1.0), "", at(tc.daysAgo))
		if err != nil {
			t.Fatalf("NewTransactionAt returned an unexpected error: %v", err)
		}
		l.transactions = append(l.transactions, tx)
	}

	r := l.Report(now, DefaultLowStockThreshold)
	// The window is the trailing seven days inclusive: 0, 3 and 7 days ago.
	if r.RecentTransactions != 3 {
		t.Errorf("RecentTransactions = %d, want 3", r.RecentTransactions)
	}
}

func TestLedger_Report_MergesCategoryCasing(t *testing.T) {
	l := NewLedger()
	if _, err := l.AddItem("Tomato", 10, M(1.0), "Vegetables", ""); err != nil {
		t.Fatalf("AddItem returned an unexpected error: %v", err)
	}
	if _, err := l.AddItem("Carrot", 10, M(1.0), "vegetables", ""); err != nil {
		t.Fatalf("AddItem returned an unexpected error: %v", err)
	}

	r := l.Report(time.Now(), DefaultLowStockThreshold)
	if len(r.Categories) != 1 {
		t.Fatalf("got %d categories, want 1 (case-insensitive rollup)", len(r.Categories))
	}
	if r.Categories[0].Items != 2 {
		t.Errorf("Categories[0].Items = %d, want 2", r.Categories[0].Items)
	}
}
