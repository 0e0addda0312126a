package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "delete an item from the inventory" }
func (*removeCmd) Usage() string {
	return `fpi remove <name>

  Deletes an item entirely. The removal is logged as an adjustment
  carrying the removed quantity, and the item's past transactions stay
  in the log.

`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (p *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one item name.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	item, err := ledger.RemoveItem(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error removing item: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Removed %s (%d %s) from the inventory.\n", item.Name(), item.Quantity(), item.Unit())
	return subcommands.ExitSuccess
}
