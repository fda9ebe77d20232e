package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mfaurel/avgcost/renderer"
)

type stocksCmd struct{}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "list the tracked stocks" }
func (*stocksCmd) Usage() string {
	return `acs stocks

  Lists the tracked stocks in order; the first one is the default for every
  command taking an optional -s flag.
`
}

func (*stocksCmd) SetFlags(f *flag.FlagSet) {}

func (c *stocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := decodeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stocks := store.Stocks()
	if len(stocks) == 0 {
		fmt.Println("No stocks tracked yet. Record a trade or run 'acs add-stock'.")
		return subcommands.ExitSuccess
	}
	counts := make(map[string]int, len(stocks))
	for _, symbol := range stocks {
		counts[symbol] = len(store.Transactions(symbol))
	}
	printMarkdown(renderer.Stocks(stocks, counts))
	return subcommands.ExitSuccess
}
