package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ferme/produce/renderer"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "show the total inventory value with a per-item breakdown" }
func (*valueCmd) Usage() string {
	return `fpi value

  Values every item at quantity times current price and prints the
  breakdown with the grand total.

`
}

func (*valueCmd) SetFlags(f *flag.FlagSet) {}

func (p *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	total, rows := ledger.InventoryValue()
	printMarkdown(renderer.ValueMarkdown(total, rows))
	return subcommands.ExitSuccess
}
