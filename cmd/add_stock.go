package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addStockCmd struct{}

func (*addStockCmd) Name() string     { return "add-stock" }
func (*addStockCmd) Synopsis() string { return "start tracking a stock" }
func (*addStockCmd) Usage() string {
	return `acs add-stock <symbol>

  Starts tracking a ticker symbol with an empty history. Recording a trade
  for a new symbol tracks it implicitly, so this is only needed to prepare
  an empty portfolio entry.
`
}

func (*addStockCmd) SetFlags(f *flag.FlagSet) {}

func (c *addStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one symbol.")
		return subcommands.ExitUsageError
	}

	store, err := decodeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.AddStock(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := encodeStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Now tracking %s\n", store.Stocks()[len(store.Stocks())-1])
	return subcommands.ExitSuccess
}
