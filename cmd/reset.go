package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	symbol string
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "remove all of one stock's transactions" }
func (*resetCmd) Usage() string {
	return `acs reset [-s <symbol>]

  Removes every transaction of the stock at once. The removed transactions
  are staged for five minutes: 'acs undo' within that window restores them.
  A newer reset replaces any pending one.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol. Defaults to the default stock.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := decodeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	symbol, err := symbolOrDefault(store, c.symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	n := store.Reset(symbol)
	if n == 0 {
		fmt.Printf("No transactions to remove for %s\n", symbol)
		return subcommands.ExitSuccess
	}
	if err := encodeStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveUndo(store); err != nil {
		fmt.Fprintln(os.Stderr, "Error staging the undo buffer:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed %d transactions of %s. Run 'acs undo' within 5 minutes to restore them.\n", n, symbol)
	return subcommands.ExitSuccess
}
