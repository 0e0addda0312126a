package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/ferme/produce"
)

// Transaction renders one log entry as a single line.
func Transaction(tx produce.Transaction) string {
	switch tx.Type {
	case produce.TxSale:
		return fmt.Sprintf("Sold %d %s at %s (total %s)", tx.Quantity, tx.ItemName, tx.UnitPrice, tx.Total())
	case produce.TxPurchase:
		return fmt.Sprintf("Stocked %d %s at %s", tx.Quantity, tx.ItemName, tx.UnitPrice)
	case produce.TxAdjustment:
		return fmt.Sprintf("Adjusted %s by %d", tx.ItemName, tx.Quantity)
	case produce.TxRefund:
		return fmt.Sprintf("Refunded %d %s (total %s)", tx.Quantity, tx.ItemName, tx.Total())
	default:
		return tx.String()
	}
}

// TransactionsMarkdown renders the given log entries as a markdown table
// in the order provided.
func TransactionsMarkdown(txs []produce.Transaction) string {
	if len(txs) == 0 {
		return "No transactions recorded.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Timestamp.Format("2006-01-02 15:04"),
			string(tx.Type),
			tx.ItemName,
			fmt.Sprintf("%d", tx.Quantity),
			tx.UnitPrice.String(),
			tx.Total().String(),
			tx.Note,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Type", "Item", "Qty", "Unit Price", "Total", "Note"},
		Rows:   rows,
	})
	return doc.String()
}
