package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/ferme/produce"
)

// ValueMarkdown renders the inventory valuation breakdown: one row per
// item and the grand total underneath.
func ValueMarkdown(total produce.Money, rows []produce.ValueRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Value")
	if len(rows) == 0 {
		doc.PlainText("No items in inventory.")
		return doc.String()
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{
			row.Name,
			fmt.Sprintf("%d %s", row.Quantity, row.Unit),
			row.Price.String(),
			row.Value.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Stock", "Price", "Value"},
		Rows:   table,
	})
	doc.PlainText(fmt.Sprintf("Total inventory value: %s", total))
	return doc.String()
}

// ReportMarkdown renders the full inventory report.
func ReportMarkdown(r *produce.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Inventory Report on %s", r.Date.Format("2006-01-02")))
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Items in stock", strconv.Itoa(r.Items)},
			{"Total inventory value", r.TotalValue.String()},
			{"Total revenue", r.TotalRevenue.String()},
			{fmt.Sprintf("Low stock items (≤ %d)", r.LowStockThreshold), strconv.Itoa(r.LowStock)},
			{"Transactions in the last 7 days", strconv.Itoa(r.RecentTransactions)},
		},
	})

	if len(r.Categories) > 0 {
		doc.H2("By Category")
		rows := make([][]string, 0, len(r.Categories))
		for _, c := range r.Categories {
			rows = append(rows, []string{c.Category, strconv.Itoa(c.Items), c.Value.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Category", "Items", "Value"},
			Rows:   rows,
		})
	}
	return doc.String()
}
