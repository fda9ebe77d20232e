package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmStockCmd struct{}

func (*rmStockCmd) Name() string     { return "rm-stock" }
func (*rmStockCmd) Synopsis() string { return "stop tracking a stock" }
func (*rmStockCmd) Usage() string {
	return `acs rm-stock <symbol>

  Stops tracking a symbol and permanently discards its transactions. The
  last tracked stock cannot be removed.
`
}

func (*rmStockCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one symbol.")
		return subcommands.ExitUsageError
	}

	store, err := decodeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.RemoveStock(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := encodeStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Stopped tracking %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
