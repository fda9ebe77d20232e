package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/mfaurel/avgcost"
	"github.com/mfaurel/avgcost/renderer"
)

// tradeCmd records a buy or a sell; the two subcommands share everything but
// the transaction type.
type tradeCmd struct {
	kind     avgcost.TxType
	symbol   string
	price    float64
	quantity float64
}

func newBuyCmd() *tradeCmd  { return &tradeCmd{kind: avgcost.Buy} }
func newSellCmd() *tradeCmd { return &tradeCmd{kind: avgcost.Sell} }

func (c *tradeCmd) Name() string { return string(c.kind) }

func (c *tradeCmd) Synopsis() string {
	if c.kind == avgcost.Buy {
		return "record a purchase"
	}
	return "record a sale"
}

func (c *tradeCmd) Usage() string {
	return fmt.Sprintf(`acs %s -p <price> -q <quantity> [-s <symbol>]

  Records a %s transaction and shows how it moves the average cost.
`, c.kind, c.kind)
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol. Defaults to the default stock.")
	f.Float64Var(&c.price, "p", 0, "Trade price per unit.")
	f.Float64Var(&c.quantity, "q", 0, "Units traded, fractional allowed.")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := decodeStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	symbol := c.symbol
	if symbol == "" {
		// Unlike reporting commands, a trade can create the first stock, so
		// only fall back to the default when one exists.
		symbol = store.ActiveStock()
		if symbol == "" {
			fmt.Fprintln(os.Stderr, "Error: no stock tracked yet, pass -s to create one.")
			return subcommands.ExitUsageError
		}
	}

	var tx avgcost.Transaction
	if c.kind == avgcost.Buy {
		tx, err = avgcost.NewBuy(symbol, c.price, c.quantity, time.Now())
	} else {
		tx, err = avgcost.NewSell(symbol, c.price, c.quantity, time.Now())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// Advisory view of the committed trade against the prior position.
	pos := avgcost.Aggregate(store.ActiveTransactions(tx.Symbol))
	preview := avgcost.PreviewTransaction(pos, c.kind, c.price, c.quantity)

	store.Add(tx)
	if err := encodeStore(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %v %s at %s (id %.8s)\n",
		c.kind, c.quantity, tx.Symbol, avgcost.Amount(c.price), tx.ID)
	if preview != nil {
		printMarkdown(renderer.Preview(tx.Symbol, c.kind, pos, preview))
	}
	return subcommands.ExitSuccess
}
