package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ferme/produce"
)

type revenueCmd struct{}

func (*revenueCmd) Name() string     { return "revenue" }
func (*revenueCmd) Synopsis() string { return "show the total revenue from all sales" }
func (*revenueCmd) Usage() string {
	return `fpi revenue

  Prints the accumulated revenue. Only sales count: purchases and
  adjustments never change it.

`
}

func (*revenueCmd) SetFlags(f *flag.FlagSet) {}

func (p *revenueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sales := 0
	for range ledger.Transactions(produce.ByType(produce.TxSale)) {
		sales++
	}
	fmt.Printf("Total revenue: %s across %d sales.\n", ledger.TotalRevenue(), sales)
	return subcommands.ExitSuccess
}
