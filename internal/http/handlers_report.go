package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"dairyledger/internal/report"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	from, to, err := parseRange(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sum, err := s.engine.Compute(r.Context(), customerID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryJSON(sum))
}

func (s *Server) handleBillPDF(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	from, to, err := parseRange(r)
	if err != nil {
		writeError(w, err)
		return
	}

	bill, err := s.engine.Bill(r.Context(), customerID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	// Render into memory first so a formatter failure can still produce a
	// clean error response.
	var buf bytes.Buffer
	if err := s.bills.WriteBill(&buf, bill); err != nil {
		slog.ErrorContext(r.Context(), "Bill rendering failed", "customer_id", customerID, "error", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.BillFilename(customerID, from)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleTransactionsExcel(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	from, to, err := parseRange(r)
	if err != nil {
		writeError(w, err)
		return
	}

	customer, err := s.store.GetCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	transactions, err := s.store.ListTransactions(r.Context(), customerID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteTransactionsExcel(&buf, transactions); err != nil {
		slog.ErrorContext(r.Context(), "Spreadsheet export failed", "customer_id", customerID, "error", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.TransactionsFilename(customer, from, to)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
