package http

import (
	"net/http"
)

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var in paymentInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	p, err := in.toCore(0)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.checkCustomerExists(r, p.CustomerID); err != nil {
		writeError(w, err)
		return
	}

	id, err := s.store.CreatePayment(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	p.ID = id

	writeJSON(w, http.StatusCreated, toPaymentJSON(p))
}

func (s *Server) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := s.store.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentJSON(p))
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
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

	payments, err := s.store.ListPayments(r.Context(), customerID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]paymentJSON, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentJSON(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in paymentInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	p, err := in.toCore(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.UpdatePayment(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentJSON(p))
}

func (s *Server) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.DeletePayment(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
