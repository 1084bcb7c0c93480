// Package summary computes billing summaries from the entity store. Every
// call is a fresh read-and-fold; nothing is cached.
package summary

import (
	"context"
	"fmt"

	"dairyledger/internal/core"
)

// Ledger is the slice of the store the engine reads from.
type Ledger interface {
	GetCustomer(ctx context.Context, id int64) (core.Customer, error)
	ListTransactions(ctx context.Context, customerID int64, from, to core.Date) ([]core.Transaction, error)
	ListPayments(ctx context.Context, customerID int64, from, to core.Date) ([]core.Payment, error)
}

type Engine struct {
	ledger Ledger
}

func New(ledger Ledger) *Engine {
	return &Engine{ledger: ledger}
}

// Compute aggregates a customer's transactions and payments over the closed
// interval [start, end]. Zero matching rows yield the zero summary, and a
// start after the end is a valid empty range, not an error. Storage errors
// propagate unchanged.
func (e *Engine) Compute(ctx context.Context, customerID int64, start, end core.Date) (core.Summary, error) {
	transactions, err := e.ledger.ListTransactions(ctx, customerID, start, end)
	if err != nil {
		return core.Summary{}, fmt.Errorf("list transactions: %w", err)
	}
	payments, err := e.ledger.ListPayments(ctx, customerID, start, end)
	if err != nil {
		return core.Summary{}, fmt.Errorf("list payments: %w", err)
	}
	return core.Fold(transactions, payments), nil
}

// Bill assembles everything a formatter needs: the customer, the ordered
// row lists, the range and the folded summary.
func (e *Engine) Bill(ctx context.Context, customerID int64, start, end core.Date) (core.Bill, error) {
	customer, err := e.ledger.GetCustomer(ctx, customerID)
	if err != nil {
		return core.Bill{}, err
	}
	transactions, err := e.ledger.ListTransactions(ctx, customerID, start, end)
	if err != nil {
		return core.Bill{}, fmt.Errorf("list transactions: %w", err)
	}
	payments, err := e.ledger.ListPayments(ctx, customerID, start, end)
	if err != nil {
		return core.Bill{}, fmt.Errorf("list payments: %w", err)
	}

	return core.Bill{
		Customer:     customer,
		Start:        start,
		End:          end,
		Transactions: transactions,
		Payments:     payments,
		Summary:      core.Fold(transactions, payments),
	}, nil
}
