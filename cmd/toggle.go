package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type toggleCmd struct{}

func (*toggleCmd) Name() string     { return "toggle" }
func (*toggleCmd) Synopsis() string { return "include or exclude a transaction from computations" }
func (*toggleCmd) Usage() string {
	return `acs toggle <id>

  Flips a transaction's active flag. An inactive transaction stays in the
  history but is excluded from the position, realized P/L and simulations.
  The id may be abbreviated to any unique prefix, as printed by 'acs tx'.
`
}

func (*toggleCmd) SetFlags(f *flag.FlagSet) {}

func (c *toggleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}

	store, err := decodeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SetActive(tx.ID, !tx.Active); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := encodeStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	state := "active"
	if tx.Active {
		state = "inactive"
	}
	fmt.Printf("Transaction %.8s is now %s\n", tx.ID, state)
	return subcommands.ExitSuccess
}
