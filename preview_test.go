package avgcost

import "testing"

func TestPreviewTransaction(t *testing.T) {
	pos := Position{Quantity: 10, Cost: 1000, AverageCost: 100}

	testCases := []struct {
		name     string
		pos      Position
		kind     TxType
		price    float64
		quantity float64
		wantNil  bool
		wantAvg  float64
		wantDelta float64
		wantFirst bool
		wantPL   *float64
	}{
		{
			name: "buy above average raises it",
			pos:  pos, kind: Buy, price: 200, quantity: 10,
			wantAvg: 150, wantDelta: 50,
		},
		{
			name: "buy below average lowers it",
			pos:  pos, kind: Buy, price: 50, quantity: 10,
			wantAvg: 75, wantDelta: -25,
		},
		{
			name: "first buy on an empty position",
			pos:  Position{}, kind: Buy, price: 42, quantity: 2,
			wantAvg: 42, wantDelta: 42, wantFirst: true,
		},
		{
			name: "sale keeps the average",
			pos:  pos, kind: Sell, price: 150, quantity: 4,
			wantAvg: 100, wantDelta: 0, wantPL: ptr(200.0),
		},
		{
			name: "selling everything zeroes the average",
			pos:  pos, kind: Sell, price: 150, quantity: 10,
			wantAvg: 0, wantDelta: -100, wantPL: ptr(500.0),
		},
		{
			name: "oversell clamps the new quantity",
			pos:  pos, kind: Sell, price: 150, quantity: 15,
			wantAvg: 0, wantDelta: -100, wantPL: ptr(750.0),
		},
		{
			name: "non-positive price has no derivation",
			pos:  pos, kind: Buy, price: 0, quantity: 10,
			wantNil: true,
		},
		{
			name: "non-positive quantity has no derivation",
			pos:  pos, kind: Sell, price: 100, quantity: -1,
			wantNil: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PreviewTransaction(tc.pos, tc.kind, tc.price, tc.quantity)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("PreviewTransaction = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("PreviewTransaction = nil, want a preview")
			}
			if got.NewAverage != tc.wantAvg {
				t.Errorf("NewAverage = %v, want %v", got.NewAverage, tc.wantAvg)
			}
			if got.Delta != tc.wantDelta {
				t.Errorf("Delta = %v, want %v", got.Delta, tc.wantDelta)
			}
			if got.FirstTransaction != tc.wantFirst {
				t.Errorf("FirstTransaction = %v, want %v", got.FirstTransaction, tc.wantFirst)
			}
			switch {
			case tc.wantPL == nil && got.EstimatedRealizedPL != nil:
				t.Errorf("EstimatedRealizedPL = %v, want nil", *got.EstimatedRealizedPL)
			case tc.wantPL != nil && got.EstimatedRealizedPL == nil:
				t.Errorf("EstimatedRealizedPL = nil, want %v", *tc.wantPL)
			case tc.wantPL != nil && *got.EstimatedRealizedPL != *tc.wantPL:
				t.Errorf("EstimatedRealizedPL = %v, want %v", *got.EstimatedRealizedPL, *tc.wantPL)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }
