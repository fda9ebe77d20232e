package avgcost

import (
	"testing"
	"time"
)

// txAt is a test helper building a transaction at a given minute offset so
// histories stay ordered without caring about real timestamps.
func txAt(t *testing.T, kind TxType, price, quantity float64, minute int) Transaction {
	t.Helper()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	var tx Transaction
	var err error
	switch kind {
	case Buy:
		tx, err = NewBuy("AAPL", price, quantity, base.Add(time.Duration(minute)*time.Minute))
	case Sell:
		tx, err = NewSell("AAPL", price, quantity, base.Add(time.Duration(minute)*time.Minute))
	}
	if err != nil {
		t.Fatalf("failed to create %s %v@%v: %v", kind, quantity, price, err)
	}
	return tx
}

func TestAggregate(t *testing.T) {
	testCases := []struct {
		name     string
		txs      []Transaction
		wantQty  float64
		wantCost float64
		wantAvg  float64
	}{
		{
			name: "empty history",
		},
		{
			name:     "single buy",
			txs:      []Transaction{{Type: Buy, Price: 100, Quantity: 10, Active: true}},
			wantQty:  10,
			wantCost: 1000,
			wantAvg:  100,
		},
		{
			name: "two buys blend the average",
			txs: []Transaction{
				{Type: Buy, Price: 100, Quantity: 10, Active: true},
				{Type: Buy, Price: 200, Quantity: 10, Active: true},
			},
			wantQty:  20,
			wantCost: 3000,
			wantAvg:  150,
		},
		{
			name: "sale keeps the average, scales the magnitudes",
			txs: []Transaction{
				{Type: Buy, Price: 100, Quantity: 10, Active: true},
				{Type: Sell, Price: 175, Quantity: 4, Active: true},
			},
			wantQty:  6,
			wantCost: 600,
			wantAvg:  100,
		},
		{
			name: "sale price does not matter for the remainder",
			txs: []Transaction{
				{Type: Buy, Price: 100, Quantity: 10, Active: true},
				{Type: Sell, Price: 1, Quantity: 4, Active: true},
			},
			wantQty:  6,
			wantCost: 600,
			wantAvg:  100,
		},
		{
			name: "selling everything empties the position",
			txs: []Transaction{
				{Type: Buy, Price: 100, Quantity: 10, Active: true},
				{Type: Sell, Price: 120, Quantity: 10, Active: true},
			},
		},
		{
			name: "oversell clamps to zero",
			txs: []Transaction{
				{Type: Buy, Price: 100, Quantity: 10, Active: true},
				{Type: Sell, Price: 120, Quantity: 15, Active: true},
			},
		},
		{
			name: "sell from empty book clamps immediately",
			txs: []Transaction{
				{Type: Sell, Price: 50, Quantity: 5, Active: true},
			},
		},
		{
			name: "buy after oversell starts a clean position",
			txs: []Transaction{
				{Type: Buy, Price: 100, Quantity: 10, Active: true},
				{Type: Sell, Price: 120, Quantity: 15, Active: true},
				{Type: Buy, Price: 80, Quantity: 5, Active: true},
			},
			wantQty:  5,
			wantCost: 400,
			wantAvg:  80,
		},
		{
			name: "fractional quantities",
			txs: []Transaction{
				{Type: Buy, Price: 10, Quantity: 2.5, Active: true},
				{Type: Buy, Price: 20, Quantity: 2.5, Active: true},
			},
			wantQty:  5,
			wantCost: 75,
			wantAvg:  15,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Aggregate(tc.txs)
			if got.Quantity != tc.wantQty {
				t.Errorf("Quantity = %v, want %v", got.Quantity, tc.wantQty)
			}
			if got.Cost != tc.wantCost {
				t.Errorf("Cost = %v, want %v", got.Cost, tc.wantCost)
			}
			if got.AverageCost != tc.wantAvg {
				t.Errorf("AverageCost = %v, want %v", got.AverageCost, tc.wantAvg)
			}
		})
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	txs := []Transaction{
		txAt(t, Buy, 33.33, 3, 0),
		txAt(t, Sell, 41.2, 1.5, 1),
		txAt(t, Buy, 28.9, 7.25, 2),
		txAt(t, Sell, 30.01, 8, 3),
		txAt(t, Sell, 12, 4, 4),
	}
	first := Aggregate(txs)
	second := Aggregate(txs)
	if first != second {
		t.Errorf("Aggregate is not deterministic: %+v != %+v", first, second)
	}
}
