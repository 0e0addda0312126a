package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ferme/produce/renderer"
)

type lowStockCmd struct{}

func (*lowStockCmd) Name() string     { return "lowstock" }
func (*lowStockCmd) Synopsis() string { return "list items at or below the low stock threshold" }
func (*lowStockCmd) Usage() string {
	return `fpi [-threshold <n>] lowstock

  Lists the items whose stock sits at or below the threshold, in the
  order they were first added.

`
}

func (*lowStockCmd) SetFlags(f *flag.FlagSet) {}

func (p *lowStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	low := ledger.LowStock(*lowStockThreshold)
	if len(low) == 0 {
		fmt.Printf("No items at or below %d in stock.\n", *lowStockThreshold)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ItemsMarkdown(low))
	return subcommands.ExitSuccess
}
