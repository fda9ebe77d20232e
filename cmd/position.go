package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfaurel/avgcost"
	"github.com/mfaurel/avgcost/renderer"
)

type positionCmd struct {
	symbol string
}

func (*positionCmd) Name() string     { return "position" }
func (*positionCmd) Synopsis() string { return "show the weighted-average position of a stock" }
func (*positionCmd) Usage() string {
	return `acs position [-s <symbol>]

  Replays the stock's active transactions and shows the held quantity, the
  cost basis and the average cost.
`
}

func (c *positionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol. Defaults to the default stock.")
}

func (c *positionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	pos := avgcost.Aggregate(store.ActiveTransactions(symbol))
	printMarkdown(renderer.Position(symbol, pos))
	return subcommands.ExitSuccess
}
