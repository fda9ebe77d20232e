// Package cmd implements the CLI application to manage the cost-basis
// ledger.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mfaurel/avgcost"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Register registers all subcommands on the commander.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&stocksCmd{}, "stocks")
	c.Register(&addStockCmd{}, "stocks")
	c.Register(&rmStockCmd{}, "stocks")
	c.Register(&renameCmd{}, "stocks")

	c.Register(newBuyCmd(), "transactions")
	c.Register(newSellCmd(), "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&toggleCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&resetCmd{}, "transactions")
	c.Register(&undoCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&positionCmd{}, "analysis")
	c.Register(&previewCmd{}, "analysis")
	c.Register(&simCmd{}, "analysis")
	c.Register(&avgdownCmd{}, "analysis")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&queryCmd{}, "documentation")
}

// As a CLI application the process is short lived, so globals are fine.

var ledgerFile = flag.String("ledger", "portfolio.jsonl", "Path to the ledger file (JSONL format)")
var currencyCode = flag.String("currency", "USD", "Currency code used to format amounts")

// decodeStore loads the ledger file, starting with an empty store when the
// file does not exist yet. It also applies the -currency flag, since every
// subcommand goes through here first.
func decodeStore() (*avgcost.Store, error) {
	if err := avgcost.SetDisplayCurrency(*currencyCode); err != nil {
		return nil, err
	}
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger does not exist, starting with an empty one")
		return avgcost.NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening ledger %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	store, err := avgcost.DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding ledger %q: %w", *ledgerFile, err)
	}
	return store, nil
}

// encodeStore rewrites the whole ledger file in canonical form. Mutations
// are whole-value replacements, matching the store's copy-on-write model.
func encodeStore(store *avgcost.Store) error {
	var buf bytes.Buffer
	if err := avgcost.EncodeStore(&buf, store); err != nil {
		return fmt.Errorf("error encoding ledger: %w", err)
	}
	if err := os.WriteFile(*ledgerFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing ledger %q: %w", *ledgerFile, err)
	}
	return nil
}

// undoFile is the sidecar staging the last reset next to the ledger.
func undoFile() string { return *ledgerFile + ".undo" }

func saveUndo(store *avgcost.Store) error {
	var buf bytes.Buffer
	if err := avgcost.EncodeUndo(&buf, store); err != nil {
		return err
	}
	return os.WriteFile(undoFile(), buf.Bytes(), 0644)
}

// loadUndo loads the staged reset, if any sidecar is present.
func loadUndo(store *avgcost.Store) error {
	f, err := os.Open(undoFile())
	if errors.Is(err, fs.ErrNotExist) {
		return avgcost.ErrNothingToUndo
	}
	if err != nil {
		return err
	}
	defer f.Close()
	return avgcost.DecodeUndo(f, store)
}

func clearUndo() {
	// Best effort: a stale sidecar only means a later undo will be refused.
	os.Remove(undoFile())
}

// symbolOrDefault resolves the -s flag against the store's default stock.
func symbolOrDefault(store *avgcost.Store, symbol string) (string, error) {
	if symbol != "" {
		return symbol, nil
	}
	if def := store.ActiveStock(); def != "" {
		return def, nil
	}
	return "", fmt.Errorf("no stock tracked yet, pass -s to pick one")
}

// printMarkdown renders markdown for the terminal; when rendering fails the
// raw markdown still prints.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// Completion describes the CLI to the shell completion engine.
func Completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, name := range []string{
		"stocks", "add-stock", "rm-stock", "rename",
		"buy", "sell", "tx", "toggle", "rm", "reset", "undo", "fmt",
		"position", "preview", "sim", "avgdown",
		"topic", "query",
		"help", "flags", "commands",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"ledger":   predict.Files("*.jsonl"),
			"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
		},
	}
}
