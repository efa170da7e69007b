package handler

import (
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xenking/invoicing/internal/billing"
	"github.com/xenking/invoicing/internal/domain/invoice"
	"github.com/xenking/invoicing/internal/export"
)

type createInvoiceRequest struct {
	NationalID string `json:"nationalId"`
}

type addLineRequest struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

type invoiceLineResponse struct {
	Index           int     `json:"index"`
	Code            string  `json:"code"`
	ItemName        string  `json:"itemName"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	Subtotal        float64 `json:"subtotal"`
	SubtotalDisplay string  `json:"subtotalDisplay"`
}

type invoiceResponse struct {
	Customer     customerResponse      `json:"customer"`
	Lines        []invoiceLineResponse `json:"lines"`
	Total        float64               `json:"total"`
	TotalDisplay string                `json:"totalDisplay"`
}

type exportResponse struct {
	Format export.Format `json:"format"`
	Path   string        `json:"path"`
}

func toInvoiceResponse(inv *invoice.Invoice) invoiceResponse {
	lines := inv.Lines()
	out := make([]invoiceLineResponse, len(lines))
	for i, l := range lines {
		sub := l.Subtotal()
		out[i] = invoiceLineResponse{
			Index:           i,
			Code:            l.Item().Code(),
			ItemName:        l.Item().Name(),
			Quantity:        l.Quantity(),
			UnitPrice:       l.Item().EffectivePrice().InexactFloat64(),
			Subtotal:        sub.InexactFloat64(),
			SubtotalDisplay: export.Display(sub),
		}
	}
	return invoiceResponse{
		Customer:     toCustomerResponse(inv.Customer()),
		Lines:        out,
		Total:        inv.Total().InexactFloat64(),
		TotalDisplay: export.Display(inv.Total()),
	}
}

// writeCurrentInvoice writes the open invoice. Callers hold h.mu.
func (h *Handler) writeCurrentInvoice(w http.ResponseWriter, r *http.Request, status int) {
	inv, ok := h.svc.CurrentInvoice()
	if !ok {
		respondError(w, r, billing.ErrNoOpenInvoice)
		return
	}
	writeJSON(w, status, toInvoiceResponse(inv))
}

// CreateInvoice opens a new invoice for a customer, replacing the current one.
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := h.svc.CreateInvoice(req.NationalID); err != nil {
		respondError(w, r, err)
		return
	}
	h.writeCurrentInvoice(w, r, http.StatusCreated)
}

// GetInvoice returns the open invoice.
func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.writeCurrentInvoice(w, r, http.StatusOK)
}

// AddLine adds a catalog item to the open invoice.
func (h *Handler) AddLine(w http.ResponseWriter, r *http.Request) {
	var req addLineRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.svc.AddLineToInvoice(req.Code, req.Quantity); err != nil {
		respondError(w, r, err)
		return
	}
	h.writeCurrentInvoice(w, r, http.StatusOK)
}

// RemoveLine removes the line at the given position. Positions outside the
// invoice are ignored and the unchanged invoice is returned.
func (h *Handler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "line index must be an integer")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.svc.RemoveLineFromInvoice(index); err != nil {
		respondError(w, r, err)
		return
	}
	h.writeCurrentInvoice(w, r, http.StatusOK)
}

// ExportInvoice writes the open invoice in the format given by the "format"
// query parameter (document or tabular).
func (h *Handler) ExportInvoice(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	path, err := h.svc.ExportCurrentInvoice(format)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	h.exports.Add(r.Context(), 1, metric.WithAttributes(
		attribute.String("format", string(format)),
		attribute.String("outcome", outcome),
	))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exportResponse{Format: format, Path: path})
}
