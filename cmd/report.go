package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/ferme/produce/renderer"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "show the full inventory report" }
func (*reportCmd) Usage() string {
	return `fpi [-threshold <n>] report

  Prints the aggregate state of the inventory: item count, total value,
  total revenue, low stock count, a per-category rollup and the recent
  transaction activity.

`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := ledger.Report(time.Now(), *lowStockThreshold)
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
