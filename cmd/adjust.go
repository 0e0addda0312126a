package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type adjustCmd struct {
	change int64
	note   string
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "apply a signed stock correction to an item" }
func (*adjustCmd) Usage() string {
	return `fpi adjust -q <change> [-note <note>] <name>

  Corrects the stock of an item by a signed amount, for spoilage,
  recounts or found stock. Adjustments never touch the revenue. A
  correction that would leave negative stock is rejected.

Usage Examples:
# 4 lettuces spoiled.
$ fpi adjust -q -4 -note spoilage Lettuce

`
}

func (p *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.change, "q", 0, "Signed quantity change, e.g. -4 for spoilage.")
	f.StringVar(&p.note, "note", "", "Optional note explaining the correction.")
}

func (p *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one item name.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if _, err := ledger.AdjustItem(f.Arg(0), p.change, p.note); err != nil {
		fmt.Fprintf(os.Stderr, "Error adjusting item: %v\n", err)
		return subcommands.ExitFailure
	}

	if status := EncodeInventory(ledger); status != subcommands.ExitSuccess {
		return status
	}
	item := ledger.Item(f.Arg(0))
	fmt.Printf("Adjusted %s by %+d, now %d %s in stock.\n",
		item.Name(), p.change, item.Quantity(), item.Unit())
	warnLowStock(ledger)
	return subcommands.ExitSuccess
}
