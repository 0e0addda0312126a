package produce

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

// Ledger is the aggregate owning all stock items, the append-only
// transaction log, and the accumulated sales revenue.
//
// Items are indexed by normalized name for O(1) lookup; a separate key
// slice preserves insertion order for queries that report in stock order.
// Transactions are kept in insertion order, which is chronological order
// since every mutation appends exactly one record.
type Ledger struct {
	items        map[string]*Item
	order        []string // insertion order of item keys
	transactions []Transaction
	revenue      Money
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{items: make(map[string]*Item)}
}

// Item returns the stock item registered under this name, or nil if
// unknown. Lookup is by normalized name.
func (l *Ledger) Item(name string) *Item {
	return l.items[Normalize(name)]
}

// Len returns the number of distinct items in stock.
func (l *Ledger) Len() int { return len(l.items) }

// AddItem records a stock purchase. If an item with the same normalized
// name already exists, its quantity grows by quantity and its price is
// overwritten with the new value (additive on quantity, last-write-wins
// on price); otherwise a new item is created with the given or default
// category and unit. One purchase transaction is appended, except for a
// zero-quantity add: that registers (or re-prices) the item without a
// log entry, since the log only records positive quantities.
//
// The call fails with a ValidationError, and makes no mutation, when the
// name is empty or quantity or price is negative.
func (l *Ledger) AddItem(name string, quantity int64, price Money, category, unit string) (*Item, error) {
	if quantity < 0 {
		return nil, Invalidf("quantity cannot be negative, got %d", quantity)
	}
	if price.IsNegative() {
		return nil, Invalidf("price cannot be negative, got %s", price.StringFixed())
	}

	item := l.Item(name)
	if item != nil {
		// Validate the log entry before touching the item, so a failure
		// leaves the ledger unchanged.
		var tx Transaction
		if quantity > 0 {
			var err error
			tx, err = NewTransaction(TxPurchase, item.Name(), quantity, price, "")
			if err != nil {
				return nil, err
			}
		}
		if err := item.SetQuantity(item.Quantity() + quantity); err != nil {
			return nil, err
		}
		if err := item.SetPrice(price); err != nil {
			return nil, err
		}
		if quantity > 0 {
			l.transactions = append(l.transactions, tx)
		}
		return item, nil
	}

	item, err := NewItem(name, quantity, price, category, unit)
	if err != nil {
		return nil, err
	}
	if quantity > 0 {
		tx, err := NewTransaction(TxPurchase, item.Name(), quantity, price, "")
		if err != nil {
			return nil, err
		}
		l.transactions = append(l.transactions, tx)
	}
	l.items[item.Key()] = item
	l.order = append(l.order, item.Key())
	return item, nil
}

// RecordSale sells quantity units of the named item at its current unit
// price. On success the stock shrinks, the sale amount is added to the
// revenue, and one sale transaction carrying the price at sale time is
// appended.
//
// It fails with ErrNotFound for an unknown item and ErrInsufficientStock
// when the request exceeds the current quantity; in both cases the ledger
// is left untouched.
func (l *Ledger) RecordSale(name string, quantity int64, note string) (Transaction, error) {
	if quantity <= 0 {
		return Transaction{}, Invalidf("quantity sold must be positive, got %d", quantity)
	}
	item := l.Item(name)
	if item == nil {
		return Transaction{}, fmt.Errorf("cannot sell %q: %w", name, ErrNotFound)
	}
	if quantity > item.Quantity() {
		return Transaction{}, fmt.Errorf("cannot sell %d of %q, only %d in stock: %w",
			quantity, item.Name(), item.Quantity(), ErrInsufficientStock)
	}

	tx, err := NewTransaction(TxSale, item.Name(), quantity, item.Price(), note)
	if err != nil {
		return Transaction{}, err
	}
	if err := item.SetQuantity(item.Quantity() - quantity); err != nil {
		return Transaction{}, err
	}
	l.revenue = l.revenue.Add(tx.Total())
	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// AdjustItem applies a signed quantity change (spoilage, recount, found
// stock). The recorded adjustment transaction stores the magnitude of the
// change and the item's current price. Adjustments never touch the
// revenue.
//
// It fails with a ValidationError for a zero change or a change that
// would make the quantity negative, and with ErrNotFound for an unknown
// item; no mutation happens on failure.
func (l *Ledger) AdjustItem(name string, change int64, note string) (Transaction, error) {
	if change == 0 {
		return Transaction{}, Invalidf("adjustment cannot be zero")
	}
	item := l.Item(name)
	if item == nil {
		return Transaction{}, fmt.Errorf("cannot adjust %q: %w", name, ErrNotFound)
	}
	newQuantity := item.Quantity() + change
	if newQuantity < 0 {
		return Transaction{}, Invalidf("adjustment of %d would leave %q with negative stock (%d in stock)",
			change, item.Name(), item.Quantity())
	}

	magnitude := change
	if magnitude < 0 {
		magnitude = -magnitude
	}
	tx, err := NewTransaction(TxAdjustment, item.Name(), magnitude, item.Price(), note)
	if err != nil {
		return Transaction{}, err
	}
	if err := item.SetQuantity(newQuantity); err != nil {
		return Transaction{}, err
	}
	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// RemoveItem deletes the item entirely and logs an adjustment transaction
// recording the removed quantity. When the removed quantity is zero there
// is nothing to record, so no transaction is appended (the log forbids
// zero quantities). Prior transactions referencing the item name are kept:
// the log is immutable history, independent of current item existence.
func (l *Ledger) RemoveItem(name string) (*Item, error) {
	item := l.Item(name)
	if item == nil {
		return nil, fmt.Errorf("cannot remove %q: %w", name, ErrNotFound)
	}
	if item.Quantity() > 0 {
		tx, err := NewTransaction(TxAdjustment, item.Name(), item.Quantity(), item.Price(), "item removed from inventory")
		if err != nil {
			return nil, err
		}
		l.transactions = append(l.transactions, tx)
	}
	delete(l.items, item.Key())
	l.order = slices.DeleteFunc(l.order, func(k string) bool { return k == item.Key() })
	return item, nil
}

// TotalRevenue returns the accumulated revenue from all sales. It is
// maintained incrementally and always equals the sum of the totals of all
// sale transactions in the log.
func (l *Ledger) TotalRevenue() Money { return l.revenue }

// Items returns an iterator over the items in name-sorted order. Every
// filter must accept an item for it to be yielded; with no filters all
// items are yielded.
func (l *Ledger) Items(filters ...func(*Item) bool) iter.Seq[*Item] {
	keys := slices.Sorted(slices.Values(l.order))
	return func(yield func(*Item) bool) {
	next:
		for _, key := range keys {
			item := l.items[key]
			for _, filter := range filters {
				if !filter(item) {
					continue next
				}
			}
			if !yield(item) {
				return
			}
		}
	}
}

// InCategory returns a predicate that filters items by case-insensitive
// category match.
func InCategory(category string) func(*Item) bool {
	want := Normalize(category)
	return func(i *Item) bool { return Normalize(i.Category()) == want }
}

// AtOrBelow returns a predicate that filters items at or below a stock
// threshold.
func AtOrBelow(threshold int64) func(*Item) bool {
	return func(i *Item) bool { return i.Quantity() <= threshold }
}

// ListItems returns items in name-sorted order, optionally restricted to
// a category (case-insensitive) and/or to low stock at the given
// threshold. Pure query.
func (l *Ledger) ListItems(category string, lowStockOnly bool, threshold int64) []*Item {
	var filters []func(*Item) bool
	if category != "" {
		filters = append(filters, InCategory(category))
	}
	if lowStockOnly {
		filters = append(filters, AtOrBelow(threshold))
	}
	return slices.Collect(l.Items(filters...))
}

// LowStock returns all items whose quantity is at or below the threshold,
// in insertion order. Pure query.
func (l *Ledger) LowStock(threshold int64) []*Item {
	var low []*Item
	for _, key := range l.order {
		if item := l.items[key]; item.Quantity() <= threshold {
			low = append(low, item)
		}
	}
	return low
}

// Transactions returns an iterator over the log in chronological
// (insertion) order. Every filter must accept a transaction for it to be
// yielded; with no filters the whole log is yielded.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
	next:
		for i, tx := range l.transactions {
			for _, filter := range filters {
				if !filter(tx) {
					continue next
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// ByType returns a predicate that filters transactions by kind.
func ByType(kind TxType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == kind }
}

// ByItem returns a predicate that filters transactions by item name,
// compared case-insensitively.
func ByItem(name string) func(Transaction) bool {
	want := Normalize(name)
	return func(tx Transaction) bool { return Normalize(tx.ItemName) == want }
}

// ByDateRange returns a predicate that keeps transactions whose timestamp
// falls between start and end, inclusive on both bounds. Only the date
// portion of the timestamp is compared.
func ByDateRange(start, end time.Time) func(Transaction) bool {
	from, to := dateOnly(start), dateOnly(end)
	return func(tx Transaction) bool {
		day := dateOnly(tx.Timestamp)
		return !day.Before(from) && !day.After(to)
	}
}

// dateOnly truncates a timestamp to midnight of its calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TransactionsByType returns all transactions of the given kind in
// chronological order. The kind string is parsed case-insensitively so
// interactive input like "SALE" works.
func (l *Ledger) TransactionsByType(kind string) ([]Transaction, error) {
	t, err := ParseTxType(kind)
	if err != nil {
		return nil, err
	}
	var txs []Transaction
	for _, tx := range l.Transactions(ByType(t)) {
		txs = append(txs, tx)
	}
	return txs, nil
}

// TransactionsByDate returns all transactions whose date falls between
// start and end, inclusive on both bounds.
func (l *Ledger) TransactionsByDate(start, end time.Time) []Transaction {
	var txs []Transaction
	for _, tx := range l.Transactions(ByDateRange(start, end)) {
		txs = append(txs, tx)
	}
	return txs
}

// Categories returns the distinct item categories in sorted order,
// compared case-insensitively but reported with their first-seen casing.
func (l *Ledger) Categories() []string {
	seen := make(map[string]string)
	for _, key := range l.order {
		c := l.items[key].Category()
		if _, ok := seen[Normalize(c)]; !ok {
			seen[Normalize(c)] = c
		}
	}
	categories := make([]string, 0, len(seen))
	for _, c := range seen {
		categories = append(categories, c)
	}
	slices.SortFunc(categories, func(a, b string) int {
		return strings.Compare(Normalize(a), Normalize(b))
	})
	return categories
}
