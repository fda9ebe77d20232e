package avgcost

// AnnotatedTransaction pairs a ledger entry with the profit or loss it
// realized, computed against the average cost as it stood immediately before
// the sale.
//
// RealizedPL is nil for buys, for inactive records, and for sales made
// against an empty book (there is no cost basis to realize against).
type AnnotatedTransaction struct {
	Transaction
	RealizedPL        *float64
	RealizedPLPercent Percent
}

// Annotate replays a time-ordered transaction history and attaches realized
// profit/loss figures to each sale.
//
// The replay is the same weighted-average walk as Aggregate, but the final
// position is not enough here: a sale must be measured against the average
// cost at the moment it happened, so the running state is sampled inside the
// loop. Inactive records never move the running totals but are kept in the
// output so the full history stays visible.
func Annotate(txs []Transaction) []AnnotatedTransaction {
	out := make([]AnnotatedTransaction, 0, len(txs))
	var qty, cost float64
	for _, tx := range txs {
		at := AnnotatedTransaction{Transaction: tx}
		if !tx.Active {
			out = append(out, at)
			continue
		}
		switch tx.Type {
		case Buy:
			cost += tx.Price * tx.Quantity
			qty += tx.Quantity
		case Sell:
			if qty > 0 {
				avg := cost / qty
				costBasis := tx.Quantity * avg
				proceeds := tx.Quantity * tx.Price
				pl := proceeds - costBasis
				at.RealizedPL = &pl
				if avg > 0 {
					at.RealizedPLPercent = Percent((tx.Price - avg) / avg * 100)
				}
				qty -= tx.Quantity
				cost = qty * avg
			} else {
				qty -= tx.Quantity
				cost -= tx.Price * tx.Quantity
			}
		}
		if qty < 0 {
			qty = 0
		}
		if cost < 0 {
			cost = 0
		}
		out = append(out, at)
	}
	return out
}
