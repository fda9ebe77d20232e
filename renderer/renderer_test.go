package renderer

import (
	"strings"
	"testing"

	"github.com/mfaurel/avgcost"
)

func TestTransactions(t *testing.T) {
	history := []avgcost.Transaction{
		{ID: "11111111-aaaa", Symbol: "AAPL", Type: avgcost.Buy, Price: 100, Quantity: 10, Active: true},
		{ID: "22222222-bbbb", Symbol: "AAPL", Type: avgcost.Sell, Price: 150, Quantity: 4, Active: true},
		{ID: "33333333-cccc", Symbol: "AAPL", Type: avgcost.Buy, Price: 500, Quantity: 1, Active: false},
	}
	md := Transactions("AAPL", avgcost.Annotate(history))

	for _, want := range []string{
		"# Transactions — AAPL",
		"| 11111111 |",
		"+$200.00", // realized on the sale
		"+50.00%",
		"buy (off)", // the inactive record stays visible
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestTransactionsEmpty(t *testing.T) {
	md := Transactions("AAPL", nil)
	if !strings.Contains(md, "No transactions recorded.") {
		t.Errorf("unexpected markdown for empty history:\n%s", md)
	}
}

func TestPosition(t *testing.T) {
	md := Position("AAPL", avgcost.Position{Quantity: 10, Cost: 1000, AverageCost: 100})
	for _, want := range []string{"Quantity: 10", "Cost basis: $1,000.00", "Average cost: $100.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	if md := Position("AAPL", avgcost.Position{}); !strings.Contains(md, "The position is empty.") {
		t.Errorf("unexpected markdown for empty position:\n%s", md)
	}
}

func TestSimulationAndPlan(t *testing.T) {
	pos := avgcost.Position{Quantity: 10, Cost: 1000, AverageCost: 100}
	sim := avgcost.Simulate(pos, 50)
	if sim == nil {
		t.Fatal("Simulate returned nil")
	}

	md := Simulation("AAPL", pos, sim)
	for _, want := range []string{"**loss**", "-$500.00", "-50.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("simulation markdown missing %q:\n%s", want, md)
		}
	}

	plan, err := avgcost.SolveAverageDown(sim, pos, 90)
	if err != nil {
		t.Fatalf("SolveAverageDown: %v", err)
	}
	md = Plan("AAPL", pos, sim, 90, plan)
	for _, want := range []string{"Additional quantity: 2.5", "Additional capital: $125.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("plan markdown missing %q:\n%s", want, md)
		}
	}
}

func TestStocks(t *testing.T) {
	md := Stocks([]string{"AAPL", "GOOG"}, map[string]int{"AAPL": 3})
	if !strings.Contains(md, "**AAPL** (default) — 3 transactions") {
		t.Errorf("unexpected stocks markdown:\n%s", md)
	}
	if !strings.Contains(md, "**GOOG** — 0 transactions") {
		t.Errorf("unexpected stocks markdown:\n%s", md)
	}
}
