package produce

import (
	"fmt"
	"strings"
	"time"
)

// TxType is a typed string identifying the kind of a transaction.
type TxType string

// The four kinds of inventory-affecting events the log records.
const (
	TxSale       TxType = "sale"
	TxPurchase   TxType = "purchase"
	TxAdjustment TxType = "adjustment"
	TxRefund     TxType = "refund"
)

// ParseTxType parses a string into a TxType, case-insensitively.
func ParseTxType(s string) (TxType, error) {
	switch t := TxType(strings.ToLower(strings.TrimSpace(s))); t {
	case TxSale, TxPurchase, TxAdjustment, TxRefund:
		return t, nil
	default:
		return "", Invalidf("invalid transaction type %q, must be one of: sale, purchase, adjustment, refund", s)
	}
}

func (t TxType) String() string { return string(t) }

// Transaction is an immutable log entry for a single inventory-affecting
// event. It is created exactly once per mutating ledger operation and
// appended to the ledger's ordered log; it is never edited or deleted,
// even after the item it names is removed.
type Transaction struct {
	Type      TxType
	ItemName  string
	Quantity  int64 // strictly positive; adjustments store the magnitude
	UnitPrice Money
	Note      string
	Timestamp time.Time
}

// NewTransaction creates a validated transaction stamped with the current
// time.
func NewTransaction(kind TxType, itemName string, quantity int64, unitPrice Money, note string) (Transaction, error) {
	return NewTransactionAt(kind, itemName, quantity, unitPrice, note, time.Now())
}

// NewTransactionAt creates a validated transaction with an explicit
// timestamp. A zero timestamp defaults to the current time. Timestamps
// are truncated to whole seconds, the granularity of the persisted
// RFC 3339 form, so a save/load round trip leaves every record equal.
func NewTransactionAt(kind TxType, itemName string, quantity int64, unitPrice Money, note string, ts time.Time) (Transaction, error) {
	if _, err := ParseTxType(string(kind)); err != nil {
		return Transaction{}, err
	}
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return Transaction{}, Invalidf("transaction item name cannot be empty")
	}
	if quantity <= 0 {
		return Transaction{}, Invalidf("transaction quantity must be positive, got %d", quantity)
	}
	if unitPrice.IsNegative() {
		return Transaction{}, Invalidf("transaction unit price cannot be negative, got %s", unitPrice.StringFixed())
	}
	if ts.IsZero() {
		ts = time.Now()
	}
	ts = ts.Truncate(time.Second)
	return Transaction{
		Type:      kind,
		ItemName:  itemName,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Note:      strings.TrimSpace(note),
		Timestamp: ts,
	}, nil
}

// Total is the derived transaction amount: quantity times unit price.
// It is computed on demand, never stored.
func (t Transaction) Total() Money { return t.UnitPrice.MulInt(t.Quantity) }

// Equal reports whether two transactions describe the same event.
func (t Transaction) Equal(o Transaction) bool {
	return t.Type == o.Type &&
		t.ItemName == o.ItemName &&
		t.Quantity == o.Quantity &&
		t.UnitPrice.Equal(o.UnitPrice) &&
		t.Note == o.Note &&
		t.Timestamp.Equal(o.Timestamp)
}

// String renders the transaction as one log line.
func (t Transaction) String() string {
	s := fmt.Sprintf("[%s] %s: %d %s @ %s each (total: %s)",
		t.Timestamp.Format("2006-01-02 15:04"),
		strings.ToUpper(string(t.Type)),
		t.Quantity, t.ItemName, t.UnitPrice, t.Total())
	if t.Note != "" {
		s += " - " + t.Note
	}
	return s
}

// MarshalJSON writes the transaction record with a stable field order.
// The note is omitted when empty.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", t.Type)
	w.Append("produce_name", t.ItemName)
	w.Append("quantity", t.Quantity)
	w.Append("unit_price", t.UnitPrice)
	w.Optional("note", t.Note)
	w.Append("timestamp", t.Timestamp.Format(time.RFC3339))
	return w.MarshalJSON()
}
