package avgcost

import "errors"

// The two ways an averaging-down target can be infeasible. They are the only
// user-facing validation errors in the engine.
var (
	// ErrTargetNotAboveMarket: buying more at or below the simulated price
	// can never hold the average above that price.
	ErrTargetNotAboveMarket = errors.New("target average must exceed the simulated price")
	// ErrTargetNotBelowAverage: averaging down past the current average is
	// neither needed nor possible.
	ErrTargetNotBelowAverage = errors.New("target average must be below the current average cost")
)

// AverageDownPlan is the additional purchase, at the simulated price, that
// pulls the position's average cost down to the requested target.
type AverageDownPlan struct {
	Quantity float64 // additional units to buy
	Capital  float64 // Quantity * simulated price
}

// SolveAverageDown solves the blended-average balance for the quantity x of
// extra units bought at the simulated price s such that
//
//	(qty*avg + x*s) / (qty + x) = target
//
// which gives x = qty * (avg - target) / (target - s). The two validation
// errors above keep the denominator positive and the plan meaningful.
//
// A non-positive target is not an error, just the absence of a request: the
// solver returns (nil, nil) and stays inactive.
func SolveAverageDown(sim *Simulation, pos Position, target float64) (*AverageDownPlan, error) {
	if sim == nil || target <= 0 {
		return nil, nil
	}
	if target <= sim.Price {
		return nil, ErrTargetNotAboveMarket
	}
	if target >= pos.AverageCost {
		return nil, ErrTargetNotBelowAverage
	}
	x := pos.Quantity * (pos.AverageCost - target) / (target - sim.Price)
	return &AverageDownPlan{Quantity: x, Capital: x * sim.Price}, nil
}
