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

type txCmd struct {
	symbol string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list one stock's transactions with realized P/L" }
func (*txCmd) Usage() string {
	return `acs tx [-s <symbol>] [-head <n>] [-tail <n>]

  Lists the stock's full history, inactive records included. Each sale
  carries the profit/loss it realized against the average cost of its time.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol. Defaults to the default stock.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
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

	annotated := avgcost.Annotate(store.Transactions(symbol))
	if c.head > 0 && len(annotated) > c.head {
		annotated = annotated[:c.head]
	}
	if c.tail > 0 && len(annotated) > c.tail {
		annotated = annotated[len(annotated)-c.tail:]
	}

	printMarkdown(renderer.Transactions(symbol, annotated))
	return subcommands.ExitSuccess
}
