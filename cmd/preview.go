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

type previewCmd struct {
	symbol   string
	kind     string
	price    float64
	quantity float64
}

func (*previewCmd) Name() string     { return "preview" }
func (*previewCmd) Synopsis() string { return "preview a trade without recording it" }
func (*previewCmd) Usage() string {
	return `acs preview -t <buy|sell> -p <price> -q <quantity> [-s <symbol>]

  Shows how a hypothetical trade would move the average cost, and for a
  sale, the profit/loss it would realize. Nothing is written to the ledger.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol. Defaults to the default stock.")
	f.StringVar(&c.kind, "t", "buy", "Transaction type: buy or sell.")
	f.Float64Var(&c.price, "p", 0, "Trade price per unit.")
	f.Float64Var(&c.quantity, "q", 0, "Units traded, fractional allowed.")
}

func (c *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := avgcost.ParseTxType(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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
	preview := avgcost.PreviewTransaction(pos, kind, c.price, c.quantity)
	if preview == nil {
		fmt.Fprintln(os.Stderr, "Error: price and quantity must be positive.")
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.Preview(symbol, kind, pos, preview))
	return subcommands.ExitSuccess
}
