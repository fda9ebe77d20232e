package avgcost

// Preview describes how a not-yet-committed trade would change a position.
// It is purely advisory: nothing is written to the store.
type Preview struct {
	NewAverage          float64
	Delta               float64 // NewAverage - current average
	FirstTransaction    bool    // the position was empty before this trade
	EstimatedRealizedPL *float64
}

// PreviewTransaction computes the position's new average cost after a
// hypothetical trade at the given price and quantity. For a sale it also
// estimates the profit/loss that would be realized at the current average.
//
// It returns nil for non-positive price or quantity: an incomplete input has
// no derivation, callers must treat the absence as "not ready".
func PreviewTransaction(pos Position, kind TxType, price, quantity float64) *Preview {
	if price <= 0 || quantity <= 0 {
		return nil
	}
	p := &Preview{FirstTransaction: pos.Quantity == 0}
	var newQty, newCost float64
	switch kind {
	case Buy:
		newQty = pos.Quantity + quantity
		newCost = pos.Cost + price*quantity
	case Sell:
		newQty = pos.Quantity - quantity
		if newQty < 0 {
			newQty = 0
		}
		// A sale at the weighted average leaves the average untouched:
		// only the magnitudes scale down.
		newCost = newQty * pos.AverageCost
		est := (price - pos.AverageCost) * quantity
		p.EstimatedRealizedPL = &est
	default:
		return nil
	}
	if newQty > 0 {
		p.NewAverage = newCost / newQty
	}
	p.Delta = p.NewAverage - pos.AverageCost
	return p
}
