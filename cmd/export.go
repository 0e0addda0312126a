package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/ferme/produce"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the inventory to CSV" }
func (*exportCmd) Usage() string {
	return `fpi export [-format inventory|transactions|report] [-o <file>]

  Writes a CSV file for use in spreadsheets. See "fpi topic exports" for
  the columns of each format.

Usage Examples:
# Export the sales log.
$ fpi export -format transactions -o sales.csv

`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.format, "format", "inventory", "Export format: inventory, transactions or report.")
	f.StringVar(&p.output, "o", "", "Output file. Defaults to <format>.csv.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var rows []map[string]string
	switch p.format {
	case "inventory":
		rows = produce.InventoryRows(ledger)
	case "transactions":
		rows = produce.TransactionRows(ledger)
	case "report":
		rows = produce.ReportRows(ledger, time.Now(), *lowStockThreshold)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export format %q.\n", p.format)
		return subcommands.ExitUsageError
	}

	output := p.output
	if output == "" {
		output = p.format + ".csv"
	}
	if err := produce.ExportCSV(output, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d rows to %s.\n", len(rows), output)
	return subcommands.ExitSuccess
}
