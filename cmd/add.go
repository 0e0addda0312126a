package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ferme/produce"
)

type addCmd struct {
	quantity int64
	price    float64
	category string
	unit     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add stock for an item, creating it if needed" }
func (*addCmd) Usage() string {
	return `fpi add -q <quantity> -p <price> [-c <category>] [-u <unit>] <name>

  Records a stock purchase. If the item already exists its quantity grows
  and its price is replaced with the new one; otherwise the item is
  created. Matching is case-insensitive: "tomato" and "Tomato" are the
  same item.

Usage Examples:
# Add 50 kg of tomatoes at $1.50 each.
$ fpi add -q 50 -p 1.50 -c Vegetables -u kg Tomato

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.quantity, "q", 0, "Quantity purchased.")
	f.Float64Var(&p.price, "p", 0, "Price per unit.")
	f.StringVar(&p.category, "c", "", "Category of the item. Defaults to "+produce.DefaultCategory+".")
	f.StringVar(&p.unit, "u", "", "Unit of measurement. Defaults to "+produce.DefaultUnit+".")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one item name.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	item, err := ledger.AddItem(f.Arg(0), p.quantity, produce.M(p.price), p.category, p.unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding item: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added %d %s of %s, now %d in stock at %s each.\n",
		p.quantity, item.Unit(), item.Name(), item.Quantity(), item.Price())
	warnLowStock(ledger)
	return subcommands.ExitSuccess
}
