package avgcost

// Status classifies a simulated position.
type Status int

const (
	Neutral Status = iota
	Profit
	Loss
)

func (s Status) String() string {
	switch s {
	case Profit:
		return "profit"
	case Loss:
		return "loss"
	default:
		return "neutral"
	}
}

// Simulation is the unrealized profit/loss of a position valued against a
// manually entered market price.
type Simulation struct {
	Price         float64 // the hypothetical market price
	CurrentValue  float64 // Price * held quantity
	Total         float64 // CurrentValue - cost basis
	PerShare      float64 // Price - average cost
	PercentChange Percent
	Status        Status
}

// Simulate values a position against a hypothetical market price. It returns
// nil when the position is empty or the price is not positive: there is
// nothing meaningful to derive.
func Simulate(pos Position, price float64) *Simulation {
	if pos.Quantity == 0 || price <= 0 {
		return nil
	}
	sim := &Simulation{
		Price:        price,
		CurrentValue: price * pos.Quantity,
		PerShare:     price - pos.AverageCost,
	}
	sim.Total = sim.CurrentValue - pos.Cost
	if pos.AverageCost > 0 {
		sim.PercentChange = Percent(sim.PerShare / pos.AverageCost * 100)
	}
	switch {
	case sim.Total > 0:
		sim.Status = Profit
	case sim.Total < 0:
		sim.Status = Loss
	}
	return sim
}
