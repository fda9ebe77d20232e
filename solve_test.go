package avgcost

import (
	"errors"
	"testing"
)

func TestSolveAverageDown(t *testing.T) {
	pos := Position{Quantity: 10, Cost: 1000, AverageCost: 100}
	sim := Simulate(pos, 50)
	if sim == nil || sim.Status != Loss {
		t.Fatalf("simulation at 50 should be a loss, got %+v", sim)
	}

	t.Run("feasible target", func(t *testing.T) {
		plan, err := SolveAverageDown(sim, pos, 90)
		if err != nil {
			t.Fatalf("SolveAverageDown returned error: %v", err)
		}
		if plan == nil {
			t.Fatal("SolveAverageDown returned no plan")
		}
		// x = 10 * (100-90) / (90-50) = 2.5
		if plan.Quantity != 2.5 {
			t.Errorf("Quantity = %v, want 2.5", plan.Quantity)
		}
		if plan.Capital != 125 {
			t.Errorf("Capital = %v, want 125", plan.Capital)
		}
	})

	t.Run("plan actually lands on the target", func(t *testing.T) {
		plan, err := SolveAverageDown(sim, pos, 90)
		if err != nil {
			t.Fatalf("SolveAverageDown returned error: %v", err)
		}
		blended := (pos.Cost + plan.Capital) / (pos.Quantity + plan.Quantity)
		if diff := blended - 90; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("blended average = %v, want 90", blended)
		}
	})

	t.Run("target at or below the simulated price", func(t *testing.T) {
		for _, target := range []float64{40, 50} {
			if _, err := SolveAverageDown(sim, pos, target); !errors.Is(err, ErrTargetNotAboveMarket) {
				t.Errorf("target %v: err = %v, want ErrTargetNotAboveMarket", target, err)
			}
		}
	})

	t.Run("target at or above the current average", func(t *testing.T) {
		for _, target := range []float64{100, 130} {
			if _, err := SolveAverageDown(sim, pos, target); !errors.Is(err, ErrTargetNotBelowAverage) {
				t.Errorf("target %v: err = %v, want ErrTargetNotBelowAverage", target, err)
			}
		}
	})

	t.Run("non-positive target keeps the solver inactive", func(t *testing.T) {
		plan, err := SolveAverageDown(sim, pos, 0)
		if plan != nil || err != nil {
			t.Errorf("SolveAverageDown(0) = (%v, %v), want (nil, nil)", plan, err)
		}
	})

	t.Run("nil simulation keeps the solver inactive", func(t *testing.T) {
		plan, err := SolveAverageDown(nil, pos, 90)
		if plan != nil || err != nil {
			t.Errorf("SolveAverageDown(nil sim) = (%v, %v), want (nil, nil)", plan, err)
		}
	})
}
