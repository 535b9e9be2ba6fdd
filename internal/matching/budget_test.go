package matching

import "testing"

func TestBudgetLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label  string
		expect string
	}{
		{label: "moins de 100€", expect: BudgetLow},
		{label: "< 100", expect: BudgetLow},
		{label: "100 - 300€", expect: BudgetMedium},
		{label: "300 - 1000€", expect: BudgetMedium},
		{label: "plus de 1000€", expect: BudgetHigh},
		{label: "autour de 1000", expect: BudgetHigh},
		{label: "Plus si affinités", expect: BudgetHigh},
		{label: "", expect: BudgetMedium},
		{label: "budget libre", expect: BudgetMedium},
		// Order sensitivity: the low rule wins over the high rule even when
		// both markers are present.
		{label: "moins de 1000€", expect: BudgetLow},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			if got := BudgetLevel(tt.label); got != tt.expect {
				t.Fatalf("BudgetLevel(%q) = %q, expected %q", tt.label, got, tt.expect)
			}
		})
	}
}
