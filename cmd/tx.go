package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/ferme/produce"
	"github.com/ferme/produce/renderer"
)

type txCmd struct {
	kind  string
	item  string
	start string
	end   string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions from the log" }
func (*txCmd) Usage() string {
	return `fpi tx [-type <kind>] [-i <item>] [-s <start_date>] [-e <end_date>] [-head <n>] [-tail <n>]

  Lists transactions in chronological order, with options for filtering
  and limiting the output. Dates are YYYY-MM-DD and the range is
  inclusive on both bounds.

Usage Examples:
# The last five sales.
$ fpi tx -type sale -tail 5

# Everything that happened to tomatoes in August.
$ fpi tx -i Tomato -s 2025-08-01 -e 2025-08-31

`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "type", "", "Only show this kind: sale, purchase, adjustment or refund.")
	f.StringVar(&p.item, "i", "", "Only show transactions for this item (case-insensitive).")
	f.StringVar(&p.start, "s", "", "The start date for a custom range.")
	f.StringVar(&p.end, "e", "", "The end date for the range. Defaults to today when -s is given.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(produce.Transaction) bool
	if p.kind != "" {
		kind, err := produce.ParseTxType(p.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing transaction type: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, produce.ByType(kind))
	}
	if p.item != "" {
		filters = append(filters, produce.ByItem(p.item))
	}
	if p.start != "" || p.end != "" {
		start, end, err := p.dateRange()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, produce.ByDateRange(start, end))
	}

	var transactions []produce.Transaction
	for _, tx := range ledger.Transactions(filters...) {
		transactions = append(transactions, tx)
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(transactions))
	return subcommands.ExitSuccess
}

// dateRange resolves the -s and -e flags. A missing end defaults to
// today, a missing start to the zero time (everything up to the end).
func (p *txCmd) dateRange() (start, end time.Time, err error) {
	end = time.Now()
	if p.end != "" {
		end, err = time.Parse("2006-01-02", p.end)
		if err != nil {
			return start, end, fmt.Errorf("Error parsing end date: %w", err)
		}
	}
	if p.start != "" {
		start, err = time.Parse("2006-01-02", p.start)
		if err != nil {
			return start, end, fmt.Errorf("Error parsing start date: %w", err)
		}
	}
	return start, end, nil
}
