package http

import (
	"log/slog"
	"net/http"

	"dairyledger/internal/core"
)

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var in customerInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	c := core.Customer{Name: in.Name, Phone: in.Phone, Address: in.Address}
	id, err := s.store.CreateCustomer(r.Context(), c)
	if err != nil {
		writeError(w, err)
		return
	}
	c.ID = id

	writeJSON(w, http.StatusCreated, toCustomerJSON(c))
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := s.store.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerJSON(c))
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.store.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]customerJSON, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerJSON(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in customerInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	c := core.Customer{ID: id, Name: in.Name, Phone: in.Phone, Address: in.Address}
	if err := s.store.UpdateCustomer(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerJSON(c))
}

func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "Customer removed via API", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
