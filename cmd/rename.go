package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type renameCmd struct{}

func (*renameCmd) Name() string     { return "rename" }
func (*renameCmd) Synopsis() string { return "rename a tracked stock" }
func (*renameCmd) Usage() string {
	return `acs rename <old> <new>

  Renames a stock and rewrites the symbol on every one of its transactions.
  The new name must not collide with another tracked stock.
`
}

func (*renameCmd) SetFlags(f *flag.FlagSet) {}

func (c *renameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <old> and <new> symbols.")
		return subcommands.ExitUsageError
	}

	store, err := decodeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.RenameStock(f.Arg(0), f.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := encodeStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Renamed %s to %s\n", f.Arg(0), f.Arg(1))
	return subcommands.ExitSuccess
}
