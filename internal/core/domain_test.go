package core

import (
	"errors"
	"math"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2024-06-01" {
		t.Errorf("String() = %q, want 2024-06-01", d.String())
	}

	for _, bad := range []string{"", "2024-13-01", "01-06-2024", "2024/06/01", "yesterday"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) err = %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestTransactionAmount(t *testing.T) {
	cases := []struct {
		kg, rate float64
		want     float64
	}{
		{10, 80, 800},
		{5, 80, 400},
		{2.5, 64.4, 161},
		{1, 0, 0},
	}
	for _, tc := range cases {
		tr := Transaction{MilkKg: tc.kg, Rate: tc.rate}
		if got := tr.Amount(); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Amount(kg=%v rate=%v) = %v, want %v", tc.kg, tc.rate, got, tc.want)
		}
	}
}

func TestCustomerValidate(t *testing.T) {
	if err := (Customer{Name: "Ali"}).Validate(); err != nil {
		t.Errorf("valid customer rejected: %v", err)
	}
	for _, name := range []string{"", "   ", "\t"} {
		err := (Customer{Name: name}).Validate()
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("Customer{Name:%q} err = %v, want ErrEmptyName", name, err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Errorf("ErrEmptyName should wrap ErrValidation")
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		CustomerID: 1,
		Date:       NewDate(2024, 6, 1),
		MilkKg:     10,
		MilkMound:  KgToMound(10),
		Rate:       80,
		TimeOfDay:  Morning,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"no customer", func(tr *Transaction) { tr.CustomerID = 0 }, ErrNoCustomer},
		{"zero date", func(tr *Transaction) { tr.Date = Date{} }, ErrInvalidDate},
		{"zero quantity", func(tr *Transaction) { tr.MilkKg = 0 }, ErrInvalidQuantity},
		{"negative quantity", func(tr *Transaction) { tr.MilkKg = -1 }, ErrInvalidQuantity},
		{"negative rate", func(tr *Transaction) { tr.Rate = -0.5 }, ErrNegativeRate},
		{"free-text time", func(tr *Transaction) { tr.TimeOfDay = "Noon" }, ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := valid
			tt.mutate(&tr)
			if err := tr.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPaymentValidate(t *testing.T) {
	valid := Payment{CustomerID: 1, Date: NewDate(2024, 6, 2), Amount: 500}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid payment rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Payment)
		want   error
	}{
		{"no customer", func(p *Payment) { p.CustomerID = 0 }, ErrNoCustomer},
		{"zero date", func(p *Payment) { p.Date = Date{} }, ErrInvalidDate},
		{"zero amount", func(p *Payment) { p.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(p *Payment) { p.Amount = -500 }, ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTimeOfDaySortKey(t *testing.T) {
	if Morning.SortKey() >= Evening.SortKey() {
		t.Errorf("Morning must order before Evening")
	}
}
