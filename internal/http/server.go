// Package http is the collaborator-facing surface of the ledger: a thin
// JSON API over the entity store, summary engine and report formatters.
// Rendering layout stays in internal/report; this layer only moves
// deterministic, correctly ordered data.
package http

import (
	"context"
	"net/http"

	"dairyledger/internal/core"
	"dairyledger/internal/report"
	"dairyledger/internal/summary"
)

// Store is the full capability set of the entity store, per entity kind.
type Store interface {
	CreateCustomer(ctx context.Context, c core.Customer) (int64, error)
	GetCustomer(ctx context.Context, id int64) (core.Customer, error)
	ListCustomers(ctx context.Context) ([]core.Customer, error)
	UpdateCustomer(ctx context.Context, c core.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error

	CreateTransaction(ctx context.Context, t core.Transaction) (int64, error)
	GetTransaction(ctx context.Context, id int64) (core.Transaction, error)
	ListTransactions(ctx context.Context, customerID int64, from, to core.Date) ([]core.Transaction, error)
	UpdateTransaction(ctx context.Context, t core.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error

	CreatePayment(ctx context.Context, p core.Payment) (int64, error)
	GetPayment(ctx context.Context, id int64) (core.Payment, error)
	ListPayments(ctx context.Context, customerID int64, from, to core.Date) ([]core.Payment, error)
	UpdatePayment(ctx context.Context, p core.Payment) error
	DeletePayment(ctx context.Context, id int64) error
}

type Server struct {
	http.Server
	store  Store
	engine *summary.Engine
	bills  *report.BillWriter
}

// NewServer configures routes, returning a ready-to-run http.Server.
func NewServer(addr string, store Store, engine *summary.Engine, bills *report.BillWriter) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:  store,
		engine: engine,
		bills:  bills,
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleHealth)

	mux.HandleFunc("POST /customers", s.withLogging(s.handleCreateCustomer))
	mux.HandleFunc("GET /customers", s.withLogging(s.handleListCustomers))
	mux.HandleFunc("GET /customers/{id}", s.withLogging(s.handleGetCustomer))
	mux.HandleFunc("PUT /customers/{id}", s.withLogging(s.handleUpdateCustomer))
	mux.HandleFunc("DELETE /customers/{id}", s.withLogging(s.handleDeleteCustomer))

	mux.HandleFunc("GET /customers/{id}/transactions", s.withLogging(s.handleListTransactions))
	mux.HandleFunc("GET /customers/{id}/payments", s.withLogging(s.handleListPayments))
	mux.HandleFunc("GET /customers/{id}/summary", s.withLogging(s.handleSummary))
	mux.HandleFunc("GET /customers/{id}/bill.pdf", s.withLogging(s.handleBillPDF))
	mux.HandleFunc("GET /customers/{id}/transactions.xlsx", s.withLogging(s.handleTransactionsExcel))

	mux.HandleFunc("POST /transactions", s.withLogging(s.handleCreateTransaction))
	mux.HandleFunc("GET /transactions/{id}", s.withLogging(s.handleGetTransaction))
	mux.HandleFunc("PUT /transactions/{id}", s.withLogging(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /transactions/{id}", s.withLogging(s.handleDeleteTransaction))

	mux.HandleFunc("POST /payments", s.withLogging(s.handleCreatePayment))
	mux.HandleFunc("GET /payments/{id}", s.withLogging(s.handleGetPayment))
	mux.HandleFunc("PUT /payments/{id}", s.withLogging(s.handleUpdatePayment))
	mux.HandleFunc("DELETE /payments/{id}", s.withLogging(s.handleDeletePayment))

	return s
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
