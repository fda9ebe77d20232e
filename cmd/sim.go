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

type simCmd struct {
	symbol string
	price  float64
}

func (*simCmd) Name() string     { return "sim" }
func (*simCmd) Synopsis() string { return "simulate profit/loss against a market price" }
func (*simCmd) Usage() string {
	return `acs sim -price <price> [-s <symbol>]

  Values the position at a hypothetical market price and shows the
  unrealized profit/loss. The price is manual input; nothing is fetched.
`
}

func (c *simCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol. Defaults to the default stock.")
	f.Float64Var(&c.price, "price", 0, "Hypothetical market price per unit.")
}

func (c *simCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.price <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -price must be positive.")
		return subcommands.ExitUsageError
	}

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
	sim := avgcost.Simulate(pos, c.price)
	if sim == nil {
		fmt.Fprintf(os.Stderr, "Nothing to simulate: the %s position is empty.\n", symbol)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Simulation(symbol, pos, sim))
	return subcommands.ExitSuccess
}
