package core

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFoldEmpty(t *testing.T) {
	s := Fold(nil, nil)
	if s != (Summary{}) {
		t.Errorf("empty fold = %+v, want all zeros", s)
	}
}

func TestFoldBillingScenario(t *testing.T) {
	// Ali: 10 kg and 5 kg at rate 80 on the same day, one payment of 500.
	transactions := []Transaction{
		{CustomerID: 1, Date: NewDate(2024, 6, 1), MilkKg: 10, MilkMound: KgToMound(10), Rate: 80, TimeOfDay: Morning},
		{CustomerID: 1, Date: NewDate(2024, 6, 1), MilkKg: 5, MilkMound: KgToMound(5), Rate: 80, TimeOfDay: Evening},
	}
	payments := []Payment{
		{CustomerID: 1, Date: NewDate(2024, 6, 2), Amount: 500},
	}

	s := Fold(transactions, payments)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"TotalMilkKg", s.TotalMilkKg, 15},
		{"TotalMilkMound", s.TotalMilkMound, 0.375},
		{"TotalAmount", s.TotalAmount, 1200},
		{"Rent", s.Rent, 0.75},
		{"MandiAverage", s.MandiAverage, 0.30},
		{"Commission", s.Commission, 0.45},
		{"NetAmount", s.NetAmount, 1198.50},
		{"TotalPaid", s.TotalPaid, 500},
		{"RemainingAmount", s.RemainingAmount, 698.50},
	}
	for _, c := range checks {
		if !approx(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestFoldMoundSummedIndependently(t *testing.T) {
	// An inconsistent kg/mound pair at entry time is carried through
	// unchanged, not silently re-derived from kilograms.
	transactions := []Transaction{
		{CustomerID: 1, Date: NewDate(2024, 1, 1), MilkKg: 40, MilkMound: 2, Rate: 10, TimeOfDay: Morning},
	}
	s := Fold(transactions, nil)
	if !approx(s.TotalMilkMound, 2) {
		t.Errorf("TotalMilkMound = %v, want stored 2, not derived %v", s.TotalMilkMound, KgToMound(40))
	}
}

func TestFoldDeductionsIgnoreRate(t *testing.T) {
	// Same weight at wildly different rates must produce identical
	// deductions: they scale with kilograms, not with amount.
	cheap := Fold([]Transaction{{MilkKg: 100, Rate: 1, Date: NewDate(2024, 1, 1)}}, nil)
	dear := Fold([]Transaction{{MilkKg: 100, Rate: 900, Date: NewDate(2024, 1, 1)}}, nil)
	if !approx(cheap.Rent, dear.Rent) || !approx(cheap.MandiAverage, dear.MandiAverage) || !approx(cheap.Commission, dear.Commission) {
		t.Errorf("deductions differ across rates: %+v vs %+v", cheap, dear)
	}
	if !approx(cheap.Rent, 5) || !approx(cheap.MandiAverage, 2) || !approx(cheap.Commission, 3) {
		t.Errorf("deductions for 100 kg = %v/%v/%v, want 5/2/3", cheap.Rent, cheap.MandiAverage, cheap.Commission)
	}
}

func TestFoldPaymentsOnly(t *testing.T) {
	s := Fold(nil, []Payment{{Amount: 300, Date: NewDate(2024, 1, 1)}, {Amount: 200, Date: NewDate(2024, 1, 2)}})
	if !approx(s.TotalPaid, 500) {
		t.Errorf("TotalPaid = %v, want 500", s.TotalPaid)
	}
	if !approx(s.RemainingAmount, -500) {
		t.Errorf("RemainingAmount = %v, want -500 (overpaid)", s.RemainingAmount)
	}
}
