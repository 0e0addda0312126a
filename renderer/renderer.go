// Package renderer turns ledger data into markdown. It owns all
// presentation concerns so the root package stays pure data and the
// commands only have to print.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/ferme/produce"
)

// ItemsMarkdown renders a stock listing as a markdown table, one row per
// item with its derived value.
func ItemsMarkdown(items []*produce.Item) string {
	if len(items) == 0 {
		return "No items in inventory.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Name(),
			item.Category(),
			fmt.Sprintf("%d %s", item.Quantity(), item.Unit()),
			item.Price().String(),
			item.Value().String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Category", "Stock", "Price", "Value"},
		Rows:   rows,
	})
	return doc.String()
}

// LowStockAlert renders the warning block shown after mutations when
// items sit at or below the threshold. It returns "" when there is
// nothing to warn about.
func LowStockAlert(items []*produce.Item, threshold int64) string {
	if len(items) == 0 {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(fmt.Sprintf("Low stock alert (threshold %d)", threshold))
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s: %d %s left", item.Name(), item.Quantity(), item.Unit()))
	}
	doc.BulletList(lines...)
	return doc.String()
}
