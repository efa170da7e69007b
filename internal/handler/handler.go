// Package handler exposes billing.Service over HTTP/JSON.
package handler

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"

	"github.com/xenking/invoicing/internal/billing"
)

// Handler serves the billing API. billing.Service is not synchronised, so
// every request holds mu for its whole unit of work.
type Handler struct {
	mu  sync.Mutex
	svc *billing.Service

	exports metric.Int64Counter
}

// NewHandler constructs a Handler around svc. Export outcomes are counted on
// meter.
func NewHandler(svc *billing.Service, meter metric.Meter) (*Handler, error) {
	exports, err := meter.Int64Counter("billing.invoice.exports",
		metric.WithDescription("Invoice exports by format and outcome"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create exports counter")
	}
	return &Handler{svc: svc, exports: exports}, nil
}

// Register installs the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/customers", h.ListCustomers)
	mux.HandleFunc("POST /api/customers", h.RegisterCustomer)
	mux.HandleFunc("GET /api/customers/{nationalId}", h.GetCustomer)
	mux.HandleFunc("DELETE /api/customers/{nationalId}", h.RemoveCustomer)

	mux.HandleFunc("GET /api/items", h.ListItems)
	mux.HandleFunc("POST /api/items", h.RegisterItem)
	mux.HandleFunc("GET /api/items/{code}", h.GetItem)
	mux.HandleFunc("PUT /api/items/{code}/price", h.UpdateItemPrice)

	mux.HandleFunc("POST /api/invoice", h.CreateInvoice)
	mux.HandleFunc("GET /api/invoice", h.GetInvoice)
	mux.HandleFunc("POST /api/invoice/lines", h.AddLine)
	mux.HandleFunc("DELETE /api/invoice/lines/{index}", h.RemoveLine)
	mux.HandleFunc("POST /api/invoice/export", h.ExportInvoice)
}

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Code: status, Message: msg})
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(err, "decode body")
	}
	return nil
}
