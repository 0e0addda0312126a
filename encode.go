package produce

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The persisted file is a single JSON object:
//
//	{
//	  "produces":      [ {name, quantity, price_per_unit, category, unit_of_measurement} ],
//	  "total_revenue": "12.50",
//	  "transactions":  [ {type, produce_name, quantity, unit_price, note, timestamp} ],
//	  "last_updated":  "2025-08-29T10:00:00Z"
//	}
//
// total_revenue is a decimal-as-string to avoid floating round-trip error.
// Keys are written in a stable order so the file stays human-diffable.

// itemRecord mirrors one entry of the "produces" array for decoding.
type itemRecord struct {
	Name         string          `json:"name"`
	Quantity     int64           `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit_of_measurement"`
}

// txRecord mirrors one entry of the "transactions" array for decoding.
type txRecord struct {
	Type        string          `json:"type"`
	ProduceName string          `json:"produce_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Note        string          `json:"note"`
	Timestamp   string          `json:"timestamp"`
}

// inventoryFile mirrors the whole persisted object for decoding. Missing
// fields decode to their zero values, which the decoder treats as empty
// collections and zero revenue; unknown fields are ignored.
type inventoryFile struct {
	Produces     []itemRecord `json:"produces"`
	TotalRevenue string       `json:"total_revenue"`
	Transactions []txRecord   `json:"transactions"`
	LastUpdated  string       `json:"last_updated"`
}

// EncodeInventory writes the ledger to w as an indented JSON object with
// a stable key order.
func EncodeInventory(w io.Writer, l *Ledger) error {
	items := make([]*Item, 0, len(l.order))
	for _, key := range l.order {
		items = append(items, l.items[key])
	}

	var obj jsonObjectWriter
	obj.Append("produces", items)
	obj.Append("total_revenue", l.revenue.StringFixed())
	obj.Append("transactions", l.transactions)
	obj.Append("last_updated", time.Now().Format(time.RFC3339))

	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode inventory: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "  "); err != nil {
		return fmt.Errorf("could not format inventory: %w", err)
	}
	indented.WriteByte('\n')
	_, err = w.Write(indented.Bytes())
	return err
}

// DecodeInventory reads a persisted inventory object from r and rebuilds
// a ledger from it. A malformed stream is an error and yields no ledger,
// so a corrupt load is never partially applied.
func DecodeInventory(r io.Reader) (*Ledger, error) {
	var file inventoryFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("could not parse inventory file: %w", err)
	}

	ledger := NewLedger()
	for _, rec := range file.Produces {
		item, err := NewItem(rec.Name, rec.Quantity, M(rec.PricePerUnit), rec.Category, rec.Unit)
		if err != nil {
			return nil, fmt.Errorf("invalid item %q in inventory file: %w", rec.Name, err)
		}
		if _, exists := ledger.items[item.Key()]; exists {
			return nil, fmt.Errorf("duplicate item %q in inventory file", rec.Name)
		}
		ledger.items[item.Key()] = item
		ledger.order = append(ledger.order, item.Key())
	}

	for i, rec := range file.Transactions {
		ts, err := parseTimestamp(rec.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp in transaction %d: %w", i, err)
		}
		tx, err := NewTransactionAt(TxType(rec.Type), rec.ProduceName, rec.Quantity, M(rec.UnitPrice), rec.Note, ts)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction %d in inventory file: %w", i, err)
		}
		ledger.transactions = append(ledger.transactions, tx)
	}

	if file.TotalRevenue != "" {
		revenue, err := ParseMoney(file.TotalRevenue)
		if err != nil {
			return nil, fmt.Errorf("invalid total_revenue %q: %w", file.TotalRevenue, err)
		}
		if revenue.IsNegative() {
			return nil, fmt.Errorf("invalid total_revenue %q: cannot be negative", file.TotalRevenue)
		}
		ledger.revenue = revenue
	}

	return ledger, nil
}

// parseTimestamp accepts RFC 3339 with or without a numeric offset, which
// covers both our own output and hand-edited files.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("timestamp is missing")
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

// SaveInventory persists the ledger to a file at path, creating parent
// directories as needed. The whole file is rewritten on every save.
func SaveInventory(path string, l *Ledger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for inventory %q: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open inventory file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeInventory(f, l)
}

// LoadInventory reads the ledger persisted at path. When the file does
// not exist the returned error wraps fs.ErrNotExist: callers treat that
// as a fresh start with an empty ledger, not a failure.
func LoadInventory(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeInventory(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", path, err)
	}
	return ledger, nil
}
