// Package renderer builds the markdown views of the avgcost reports. It is
// presentation only: every number it prints was computed by the engine.
package renderer

import (
	"fmt"
	"strings"

	"github.com/mfaurel/avgcost"
)

// Transactions renders one symbol's annotated history as a markdown table.
func Transactions(symbol string, txs []avgcost.AnnotatedTransaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions — %s\n\n", symbol)
	if len(txs) == 0 {
		b.WriteString("No transactions recorded.\n")
		return b.String()
	}

	b.WriteString("| Id | Date | Type | Quantity | Price | Realized P/L | % |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, tx := range txs {
		kind := string(tx.Type)
		if !tx.Active {
			kind += " (off)"
		}
		realized, percent := "-", "-"
		if tx.RealizedPL != nil {
			realized = avgcost.Amount(*tx.RealizedPL).SignedString()
			percent = tx.RealizedPLPercent.SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			shortID(tx.ID),
			tx.Time.Format("2006-01-02 15:04"),
			kind,
			formatQuantity(tx.Quantity),
			avgcost.Amount(tx.Price),
			realized,
			percent,
		)
	}
	return b.String()
}

// Position renders the aggregate state of one symbol.
func Position(symbol string, pos avgcost.Position) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Position — %s\n\n", symbol)
	if pos.Quantity == 0 {
		b.WriteString("The position is empty.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "- Quantity: %s\n", formatQuantity(pos.Quantity))
	fmt.Fprintf(&b, "- Cost basis: %s\n", avgcost.Amount(pos.Cost))
	fmt.Fprintf(&b, "- Average cost: %s\n", avgcost.Amount(pos.AverageCost))
	return b.String()
}

// Simulation renders the unrealized profit/loss of a position against the
// manually entered market price.
func Simulation(symbol string, pos avgcost.Position, sim *avgcost.Simulation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Simulation — %s @ %s\n\n", symbol, avgcost.Amount(sim.Price))
	fmt.Fprintf(&b, "- Status: **%s**\n", sim.Status)
	fmt.Fprintf(&b, "- Current value: %s (%s held at average %s)\n",
		avgcost.Amount(sim.CurrentValue), formatQuantity(pos.Quantity), avgcost.Amount(pos.AverageCost))
	fmt.Fprintf(&b, "- Unrealized P/L: %s\n", avgcost.Amount(sim.Total).SignedString())
	fmt.Fprintf(&b, "- Per share: %s (%s)\n",
		avgcost.Amount(sim.PerShare).SignedString(), sim.PercentChange.SignedString())
	return b.String()
}

// Preview renders the advisory view of a not-yet-committed trade.
func Preview(symbol string, kind avgcost.TxType, pos avgcost.Position, p *avgcost.Preview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Preview — %s %s\n\n", kind, symbol)
	if p.FirstTransaction {
		b.WriteString("- This would be the first transaction for this stock.\n")
	}
	fmt.Fprintf(&b, "- New average cost: %s (currently %s)\n",
		avgcost.Amount(p.NewAverage), avgcost.Amount(pos.AverageCost))
	fmt.Fprintf(&b, "- Change: %s\n", avgcost.Amount(p.Delta).SignedString())
	if p.EstimatedRealizedPL != nil {
		fmt.Fprintf(&b, "- Estimated realized P/L: %s\n",
			avgcost.Amount(*p.EstimatedRealizedPL).SignedString())
	}
	return b.String()
}

// Plan renders an averaging-down plan.
func Plan(symbol string, pos avgcost.Position, sim *avgcost.Simulation, target float64, plan *avgcost.AverageDownPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Averaging down — %s\n\n", symbol)
	fmt.Fprintf(&b, "Pulling the average from %s to %s at a price of %s requires:\n\n",
		avgcost.Amount(pos.AverageCost), avgcost.Amount(target), avgcost.Amount(sim.Price))
	fmt.Fprintf(&b, "- Additional quantity: %s\n", formatQuantity(plan.Quantity))
	fmt.Fprintf(&b, "- Additional capital: %s\n", avgcost.Amount(plan.Capital))
	fmt.Fprintf(&b, "- Resulting position: %s held for %s\n",
		formatQuantity(pos.Quantity+plan.Quantity), avgcost.Amount(pos.Cost+plan.Capital))
	return b.String()
}

// Stocks renders the tracked symbols with their transaction counts. The
// first stock is the default one.
func Stocks(stocks []string, counts map[string]int) string {
	var b strings.Builder
	b.WriteString("# Stocks\n\n")
	for i, symbol := range stocks {
		marker := ""
		if i == 0 {
			marker = " (default)"
		}
		fmt.Fprintf(&b, "- **%s**%s — %d transactions\n", symbol, marker, counts[symbol])
	}
	return b.String()
}

// shortID abbreviates a transaction id for display; Store.Find resolves
// prefixes back to full records.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatQuantity trims the noise from fractional share counts.
func formatQuantity(q float64) string {
	s := fmt.Sprintf("%.4f", q)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
