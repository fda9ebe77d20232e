package avgcost

// Position is the weighted-average state of one stock, derived from its
// active transactions and never stored.
type Position struct {
	Quantity    float64
	Cost        float64 // total cost basis of the held quantity
	AverageCost float64 // Cost / Quantity, or 0 for an empty position
}

// Aggregate replays a time-ordered transaction history into a Position using
// the weighted-average-cost method: every buy blends into a single average
// acquisition price, and a sale scales the cost basis down proportionally
// without moving that average.
//
// The input must already be filtered to one symbol's active transactions, in
// timestamp order. The result is a pure function of the sequence.
func Aggregate(txs []Transaction) Position {
	var qty, cost float64
	for _, tx := range txs {
		switch tx.Type {
		case Buy:
			cost += tx.Price * tx.Quantity
			qty += tx.Quantity
		case Sell:
			if qty > 0 {
				avg := cost / qty
				qty -= tx.Quantity
				cost = qty * avg
			} else {
				// Selling from an empty book preserves no average-cost
				// identity; raw subtraction, kept for compatibility with
				// histories recorded by earlier versions.
				qty -= tx.Quantity
				cost -= tx.Price * tx.Quantity
			}
		}
		// Clamp after every step so float drift from an oversell cannot
		// compound across the remainder of the replay.
		if qty < 0 {
			qty = 0
		}
		if cost < 0 {
			cost = 0
		}
	}
	pos := Position{Quantity: qty, Cost: cost}
	if qty > 0 {
		pos.AverageCost = cost / qty
	}
	return pos
}
