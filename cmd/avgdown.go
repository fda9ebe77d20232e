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

type avgdownCmd struct {
	symbol string
	price  float64
	target float64
}

func (*avgdownCmd) Name() string     { return "avgdown" }
func (*avgdownCmd) Synopsis() string { return "compute the purchase that averages down to a target" }
func (*avgdownCmd) Usage() string {
	return `acs avgdown -price <price> -target <average> [-s <symbol>]

  Solves for the additional quantity, bought at the given market price, that
  pulls the average cost down to the target. The target must sit strictly
  between the market price and the current average.
`
}

func (c *avgdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol. Defaults to the default stock.")
	f.Float64Var(&c.price, "price", 0, "Hypothetical market price per unit.")
	f.Float64Var(&c.target, "target", 0, "Desired average cost after the purchase.")
}

func (c *avgdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.price <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -price must be positive.")
		return subcommands.ExitUsageError
	}
	if c.target <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -target must be positive.")
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
		fmt.Fprintf(os.Stderr, "Nothing to average down: the %s position is empty.\n", symbol)
		return subcommands.ExitFailure
	}

	plan, err := avgcost.SolveAverageDown(sim, pos, c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Plan(symbol, pos, sim, c.target, plan))
	return subcommands.ExitSuccess
}
