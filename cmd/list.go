package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ferme/produce/renderer"
)

type listCmd struct {
	category string
	lowOnly  bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list items in stock" }
func (*listCmd) Usage() string {
	return `fpi list [-c <category>] [-low]

  Lists items in name order, with stock, price and the derived value.

Usage Examples:
# List all vegetables running low.
$ fpi list -c Vegetables -low

`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", "", "Only list items in this category (case-insensitive).")
	f.BoolVar(&p.lowOnly, "low", false, "Only list items at or below the low stock threshold.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	items := ledger.ListItems(p.category, p.lowOnly, *lowStockThreshold)
	printMarkdown(renderer.ItemsMarkdown(items))
	return subcommands.ExitSuccess
}
