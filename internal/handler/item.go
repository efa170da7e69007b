package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/xenking/invoicing/internal/domain/catalog"
)

type itemRequest struct {
	Type       catalog.Kind     `json:"type"`
	Code       string           `json:"code"`
	Name       string           `json:"name"`
	Price      *decimal.Decimal `json:"price"`
	Weight     *decimal.Decimal `json:"weight,omitempty"`
	LicenseKey string           `json:"licenseKey,omitempty"`
}

type priceRequest struct {
	Price *decimal.Decimal `json:"price"`
}

type itemResponse struct {
	Type           catalog.Kind `json:"type"`
	Code           string       `json:"code"`
	Name           string       `json:"name"`
	Price          float64      `json:"price"`
	EffectivePrice float64      `json:"effectivePrice"`
	Weight         *float64     `json:"weight,omitempty"`
	LicenseKey     string       `json:"licenseKey,omitempty"`
}

func toItemResponse(it *catalog.Item) itemResponse {
	resp := itemResponse{
		Type:           it.Kind(),
		Code:           it.Code(),
		Name:           it.Name(),
		Price:          it.Price().InexactFloat64(),
		EffectivePrice: it.EffectivePrice().InexactFloat64(),
		LicenseKey:     it.LicenseKey(),
	}
	if it.Kind() == catalog.KindPhysical {
		weight := it.Weight().InexactFloat64()
		resp.Weight = &weight
	}
	return resp
}

// ListItems returns the catalog.
func (h *Handler) ListItems(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	items := h.svc.Items()
	out := make([]itemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}
	writeJSON(w, http.StatusOK, out)
}

// RegisterItem registers a physical or digital item depending on the
// request type.
func (h *Handler) RegisterItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Price == nil {
		writeError(w, http.StatusBadRequest, "price is required")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var (
		item *catalog.Item
		err  error
	)
	switch req.Type {
	case catalog.KindPhysical:
		if req.Weight == nil {
			writeError(w, http.StatusBadRequest, "weight is required for physical items")
			return
		}
		item, err = h.svc.RegisterPhysicalItem(req.Code, req.Name, *req.Price, *req.Weight)
	case catalog.KindDigital:
		item, err = h.svc.RegisterDigitalItem(req.Code, req.Name, *req.Price, req.LicenseKey)
	default:
		writeError(w, http.StatusBadRequest, "type must be physical or digital")
		return
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// GetItem returns one item by code.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	item, err := h.svc.FindItem(r.PathValue("code"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// UpdateItemPrice sets a new price on an item.
func (h *Handler) UpdateItemPrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Price == nil {
		writeError(w, http.StatusBadRequest, "price is required")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	code := r.PathValue("code")
	if err := h.svc.UpdateItemPrice(code, *req.Price); err != nil {
		respondError(w, r, err)
		return
	}
	item, err := h.svc.FindItem(code)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}
