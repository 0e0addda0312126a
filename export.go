package produce

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// this file contains the flat tabular export formats consumed by the
// external reporting surface. Rows are generic string maps so the three
// variants (inventory, transactions, full report) can carry different
// column sets through one writer.

// WriteRows writes rows as CSV. The column set is the union of keys
// across all rows, in sorted order for determinism; rows missing a column
// get an empty cell. An empty row set is an error.
func WriteRows(w io.Writer, rows []map[string]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to export")
	}

	columnSet := make(map[string]struct{})
	for _, row := range rows {
		for key := range row {
			columnSet[key] = struct{}{}
		}
	}
	columns := make([]string, 0, len(columnSet))
	for key := range columnSet {
		columns = append(columns, key)
	}
	sort.Strings(columns)

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes rows to a CSV file at path, creating parent
// directories as needed. An empty row set is rejected before anything
// touches the filesystem, so a failed export leaves no empty file.
func ExportCSV(path string, rows []map[string]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to export")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for export %q: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open export file %q for writing: %w", path, err)
	}
	defer f.Close()
	return WriteRows(f, rows)
}

// InventoryRows builds the inventory export: one row per item plus the
// computed total stock value.
func InventoryRows(l *Ledger) []map[string]string {
	var rows []map[string]string
	for item := range l.Items() {
		rows = append(rows, map[string]string{
			"name":                item.Name(),
			"category":            item.Category(),
			"quantity":            strconv.FormatInt(item.Quantity(), 10),
			"unit_of_measurement": item.Unit(),
			"price_per_unit":      item.Price().StringFixed(),
			"total_value":         item.Value().StringFixed(),
		})
	}
	return rows
}

// TransactionRows builds the transaction export: one row per log entry
// plus the derived total amount and a human-formatted date.
func TransactionRows(l *Ledger) []map[string]string {
	var rows []map[string]string
	for _, tx := range l.Transactions() {
		row := map[string]string{
			"date":         tx.Timestamp.Format("2006-01-02 15:04"),
			"type":         string(tx.Type),
			"produce_name": tx.ItemName,
			"quantity":     strconv.FormatInt(tx.Quantity, 10),
			"unit_price":   tx.UnitPrice.StringFixed(),
			"total_amount": tx.Total().StringFixed(),
		}
		if tx.Note != "" {
			row["note"] = tx.Note
		}
		rows = append(rows, row)
	}
	return rows
}

// StockStatus classifies an item's stock level for the full report.
func StockStatus(quantity, threshold int64) string {
	switch {
	case quantity == 0:
		return "out of stock"
	case quantity <= threshold:
		return "low stock"
	default:
		return "in stock"
	}
}

// ReportRows builds the full report export: one row per item with its
// stock status at the given threshold, plus a trailing SUMMARY row
// aggregating item count, total quantity, total value, and total revenue.
func ReportRows(l *Ledger, now time.Time, threshold int64) []map[string]string {
	var rows []map[string]string
	var totalQuantity int64
	var totalValue Money
	for item := range l.Items() {
		totalQuantity += item.Quantity()
		totalValue = totalValue.Add(item.Value())
		rows = append(rows, map[string]string{
			"name":           item.Name(),
			"category":       item.Category(),
			"quantity":       strconv.FormatInt(item.Quantity(), 10),
			"price_per_unit": item.Price().StringFixed(),
			"total_value":    item.Value().StringFixed(),
			"stock_status":   StockStatus(item.Quantity(), threshold),
		})
	}
	rows = append(rows, map[string]string{
		"name":          "SUMMARY",
		"date":          now.Format("2006-01-02"),
		"item_count":    strconv.Itoa(l.Len()),
		"quantity":      strconv.FormatInt(totalQuantity, 10),
		"total_value":   totalValue.StringFixed(),
		"total_revenue": l.TotalRevenue().StringFixed(),
	})
	return rows
}
