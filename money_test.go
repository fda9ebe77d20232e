package avgcost

import "testing"

func TestAmountString(t *testing.T) {
	testCases := []struct {
		amount Amount
		want   string
	}{
		{0, "$0.00"},
		{1234.567, "$1,234.57"},
		{-42.4, "-$42.40"},
		{0.005, "$0.01"},
	}
	for _, tc := range testCases {
		if got := tc.amount.String(); got != tc.want {
			t.Errorf("Amount(%v).String() = %q, want %q", float64(tc.amount), got, tc.want)
		}
	}
}

func TestAmountSignedString(t *testing.T) {
	if got := Amount(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
	if got := Amount(10).SignedString(); got != "+$10.00" {
		t.Errorf("SignedString = %q, want +$10.00", got)
	}
}

func TestSetDisplayCurrency(t *testing.T) {
	t.Cleanup(func() { displayCurrency = "USD" })

	if err := SetDisplayCurrency("EUR"); err != nil {
		t.Fatalf("SetDisplayCurrency(EUR): %v", err)
	}
	if got := Amount(5).String(); got == "$5.00" {
		t.Errorf("Amount still formatted as USD after switching to EUR: %q", got)
	}
	if err := SetDisplayCurrency("NOPE"); err == nil {
		t.Error("SetDisplayCurrency accepted an unknown code")
	}
}
