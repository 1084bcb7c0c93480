package core

// Deduction percentages applied to total milk weight, not to total amount.
// This is the domain rule: rent, mandi average and commission scale with
// delivered kilograms regardless of rate.
const (
	RentPerKg         = 0.05
	MandiAveragePerKg = 0.02
	CommissionPerKg   = 0.03
)

// Summary is the billing read-model for one customer over a closed date
// interval. It is derived on every read and never persisted.
type Summary struct {
	TotalMilkKg     float64
	TotalMilkMound  float64
	TotalAmount     float64
	Rent            float64
	MandiAverage    float64
	Commission      float64
	NetAmount       float64
	TotalPaid       float64
	RemainingAmount float64
}

// Fold aggregates transactions and payments into a Summary. An empty input
// yields the zero Summary. TotalMilkMound is summed independently from the
// stored per-row values rather than re-derived from TotalMilkKg, so an
// inconsistent kg/mound pair at insert time shows up here unchanged.
func Fold(transactions []Transaction, payments []Payment) Summary {
	var s Summary
	for _, t := range transactions {
		s.TotalMilkKg += t.MilkKg
		s.TotalMilkMound += t.MilkMound
		s.TotalAmount += t.Amount()
	}
	for _, p := range payments {
		s.TotalPaid += p.Amount
	}
	s.Rent = s.TotalMilkKg * RentPerKg
	s.MandiAverage = s.TotalMilkKg * MandiAveragePerKg
	s.Commission = s.TotalMilkKg * CommissionPerKg
	s.NetAmount = s.TotalAmount - (s.Rent + s.MandiAverage + s.Commission)
	s.RemainingAmount = s.NetAmount - s.TotalPaid
	return s
}

// Bill carries everything a formatter needs to render one bill: the
// summary, the customer, the ordered row lists and the requested range.
type Bill struct {
	Customer     Customer
	Start        Date
	End          Date
	Transactions []Transaction
	Payments     []Payment
	Summary      Summary
}
