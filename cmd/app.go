// Package cmd implements the CLI application to manage a farm produce
// inventory.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/ferme/produce"
	"github.com/ferme/produce/renderer"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&sellCmd{},
	&adjustCmd{},
	&removeCmd{},
	&listCmd{},
	&lowStockCmd{},
	&valueCmd{},
	&revenueCmd{},
	&reportCmd{},
	&txCmd{},
	&exportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var inventoryFile = flag.String("f", "inventory.json", "Path to the inventory file (JSON)")
var lowStockThreshold = flag.Int64("threshold", produce.DefaultLowStockThreshold, "Stock level at or below which an item counts as low")

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// DecodeInventory loads the ledger from the app inventory file. A
// missing file is a fresh start: it returns an empty ledger with a
// warning instead of failing.
func DecodeInventory() (*produce.Ledger, error) {
	ledger, err := produce.LoadInventory(*inventoryFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("file", *inventoryFile).Msg("inventory file does not exist, starting from an empty inventory")
		return produce.NewLedger(), nil
	}
	return ledger, err
}

// EncodeInventory saves the ledger back to the app inventory file,
// rewriting it completely.
func EncodeInventory(ledger *produce.Ledger) subcommands.ExitStatus {
	if err := produce.SaveInventory(*inventoryFile, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory file %q: %v\n", *inventoryFile, err)
		return subcommands.ExitFailure
	}
	logger.Info().Str("file", *inventoryFile).Msg("inventory saved")
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal via glamour, falling
// back to the raw text when rendering fails (e.g. no TTY detection).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// warnLowStock prints the low stock alert after a mutation, if any item
// sits at or below the threshold.
func warnLowStock(ledger *produce.Ledger) {
	low := ledger.LowStock(*lowStockThreshold)
	if len(low) == 0 {
		return
	}
	printMarkdown(renderer.LowStockAlert(low, *lowStockThreshold))
}
