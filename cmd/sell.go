package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ferme/produce/renderer"
)

type sellCmd struct {
	quantity int64
	note     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale at the item's current price" }
func (*sellCmd) Usage() string {
	return `fpi sell -q <quantity> [-note <note>] <name>

  Sells stock at the item's current price. The sale amount is added to
  the total revenue and the sale is logged with the price at sale time.
  A sale that exceeds the available stock is rejected.

Usage Examples:
# Sell 10 tomatoes.
$ fpi sell -q 10 Tomato

`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.quantity, "q", 0, "Quantity sold.")
	f.StringVar(&p.note, "note", "", "Optional note attached to the sale.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one item name.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.RecordSale(f.Arg(0), p.quantity, p.note)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording sale: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("%s. Total revenue is now %s.\n", renderer.Transaction(tx), ledger.TotalRevenue())
	warnLowStock(ledger)
	return subcommands.ExitSuccess
}
