package http

import (
	"dairyledger/internal/core"
)

type customerJSON struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type transactionJSON struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customer_id"`
	Date       string  `json:"date"`
	MilkKg     float64 `json:"milk_kg"`
	MilkMound  float64 `json:"milk_mound"`
	Rate       float64 `json:"rate"`
	TimeOfDay  string  `json:"time_of_day"`
	// Amount is derived from milk_kg * rate on every read; it is never
	// accepted on input.
	Amount float64 `json:"amount"`
}

type paymentJSON struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customer_id"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
}

type summaryJSON struct {
	TotalMilkKg     float64 `json:"total_milk_kg"`
	TotalMilkMound  float64 `json:"total_milk_mound"`
	TotalAmount     float64 `json:"total_amount"`
	Rent            float64 `json:"rent"`
	MandiAverage    float64 `json:"mandi_average"`
	Commission      float64 `json:"commission"`
	NetAmount       float64 `json:"net_amount"`
	TotalPaid       float64 `json:"total_paid"`
	RemainingAmount float64 `json:"remaining_amount"`
}

type customerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type transactionInput struct {
	CustomerID int64   `json:"customer_id"`
	Date       string  `json:"date"`
	MilkKg     float64 `json:"milk_kg"`
	MilkMound  float64 `json:"milk_mound"`
	Rate       float64 `json:"rate"`
	TimeOfDay  string  `json:"time_of_day"`
}

type paymentInput struct {
	CustomerID int64   `json:"customer_id"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
}

func toCustomerJSON(c core.Customer) customerJSON {
	return customerJSON{ID: c.ID, Name: c.Name, Phone: c.Phone, Address: c.Address}
}

func toTransactionJSON(t core.Transaction) transactionJSON {
	return transactionJSON{
		ID:         t.ID,
		CustomerID: t.CustomerID,
		Date:       t.Date.String(),
		MilkKg:     t.MilkKg,
		MilkMound:  t.MilkMound,
		Rate:       t.Rate,
		TimeOfDay:  string(t.TimeOfDay),
		Amount:     t.Amount(),
	}
}

func toPaymentJSON(p core.Payment) paymentJSON {
	return paymentJSON{ID: p.ID, CustomerID: p.CustomerID, Date: p.Date.String(), Amount: p.Amount}
}

func toSummaryJSON(s core.Summary) summaryJSON {
	return summaryJSON{
		TotalMilkKg:     s.TotalMilkKg,
		TotalMilkMound:  s.TotalMilkMound,
		TotalAmount:     s.TotalAmount,
		Rent:            s.Rent,
		MandiAverage:    s.MandiAverage,
		Commission:      s.Commission,
		NetAmount:       s.NetAmount,
		TotalPaid:       s.TotalPaid,
		RemainingAmount: s.RemainingAmount,
	}
}

func (in transactionInput) toCore(id int64) (core.Transaction, error) {
	date, err := core.ParseDate(in.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	return core.Transaction{
		ID:         id,
		CustomerID: in.CustomerID,
		Date:       date,
		MilkKg:     in.MilkKg,
		MilkMound:  in.MilkMound,
		Rate:       in.Rate,
		TimeOfDay:  core.TimeOfDay(in.TimeOfDay),
	}, nil
}

func (in paymentInput) toCore(id int64) (core.Payment, error) {
	date, err := core.ParseDate(in.Date)
	if err != nil {
		return core.Payment{}, err
	}
	return core.Payment{ID: id, CustomerID: in.CustomerID, Date: date, Amount: in.Amount}, nil
}
