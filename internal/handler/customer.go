package handler

import (
	"net/http"

	"github.com/xenking/invoicing/internal/domain/customer"
)

type customerRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	NationalID string `json:"nationalId"`
}

type customerResponse struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	NationalID string `json:"nationalId"`
	Display    string `json:"display"`
}

func toCustomerResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		NationalID: c.NationalID,
		Display:    c.Describe(),
	}
}

// ListCustomers returns every registered customer.
func (h *Handler) ListCustomers(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	customers := h.svc.Customers()
	out := make([]customerResponse, len(customers))
	for i, c := range customers {
		out[i] = toCustomerResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// RegisterCustomer registers a new customer.
func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	c, err := h.svc.RegisterCustomer(req.FirstName, req.LastName, req.NationalID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerResponse(c))
}

// GetCustomer returns one customer by national id.
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, err := h.svc.FindCustomer(r.PathValue("nationalId"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

// RemoveCustomer removes a customer from the registry. An open invoice for
// that customer stays open.
func (h *Handler) RemoveCustomer(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.svc.RemoveCustomer(r.PathValue("nationalId")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
