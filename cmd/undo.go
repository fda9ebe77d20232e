package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfaurel/avgcost"
)

type undoCmd struct{}

func (*undoCmd) Name() string     { return "undo" }
func (*undoCmd) Synopsis() string { return "restore the transactions removed by the last reset" }
func (*undoCmd) Usage() string {
	return `acs undo

  Restores the transactions staged by the last 'acs reset', if it happened
  less than five minutes ago. The staged buffer is one-shot.
`
}

func (*undoCmd) SetFlags(f *flag.FlagSet) {}

func (c *undoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := decodeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := loadUndo(store); err != nil {
		if errors.Is(err, avgcost.ErrNothingToUndo) {
			fmt.Fprintln(os.Stderr, "Nothing to undo.")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}

	n, err := store.Undo()
	if err != nil {
		// Expired or empty: the sidecar is stale either way.
		clearUndo()
		fmt.Fprintln(os.Stderr, "Nothing to undo: the last reset is too old.")
		return subcommands.ExitFailure
	}
	if err := encodeStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	clearUndo()

	fmt.Printf("Restored %d transactions\n", n)
	return subcommands.ExitSuccess
}
