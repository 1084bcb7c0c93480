package http

import (
	"errors"
	"fmt"
	"net/http"

	"dairyledger/internal/core"
)

// checkCustomerExists guards against dangling customer references before a
// row insert; the schema's foreign key is not enforced by every SQLite
// configuration.
func (s *Server) checkCustomerExists(r *http.Request, customerID int64) error {
	_, err := s.store.GetCustomer(r.Context(), customerID)
	if errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("%w: customer %d does not exist", core.ErrValidation, customerID)
	}
	return err
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in transactionInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	t, err := in.toCore(0)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.checkCustomerExists(r, t.CustomerID); err != nil {
		writeError(w, err)
		return
	}

	id, err := s.store.CreateTransaction(r.Context(), t)
	if err != nil {
		writeError(w, err)
		return
	}
	t.ID = id

	writeJSON(w, http.StatusCreated, toTransactionJSON(t))
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	t, err := s.store.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionJSON(t))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
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

	transactions, err := s.store.ListTransactions(r.Context(), customerID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]transactionJSON, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, toTransactionJSON(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in transactionInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	t, err := in.toCore(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.UpdateTransaction(r.Context(), t); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionJSON(t))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
