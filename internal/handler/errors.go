package handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/invoicing/internal/billing"
	"github.com/xenking/invoicing/internal/domain/catalog"
	"github.com/xenking/invoicing/internal/domain/customer"
	"github.com/xenking/invoicing/internal/domain/invoice"
	"github.com/xenking/invoicing/internal/export"
)

// respondError converts a domain error into an API error response. Errors
// outside the domain taxonomy are logged and reported as 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		priceErr    *catalog.InvalidPriceError
		qtyErr      *invoice.InvalidQuantityError
		fieldErr    *billing.FieldRequiredError
		nameErr     *export.InvalidNameError
		itemNFErr   *catalog.ItemNotFoundError
		custNFErr   *customer.NotFoundError
		itemDupErr  *catalog.DuplicateItemError
		custDupErr  *customer.DuplicateError
		formatErr   *export.UnknownFormatError
		exportIOErr *export.IOError
	)

	switch {
	case errors.As(err, &priceErr):
		writeError(w, http.StatusUnprocessableEntity, priceErr.Error())
	case errors.As(err, &qtyErr):
		writeError(w, http.StatusUnprocessableEntity, qtyErr.Error())
	case errors.As(err, &fieldErr):
		writeError(w, http.StatusUnprocessableEntity, fieldErr.Error())
	case errors.As(err, &nameErr):
		writeError(w, http.StatusUnprocessableEntity, nameErr.Error())
	case errors.As(err, &itemNFErr):
		writeError(w, http.StatusNotFound, itemNFErr.Error())
	case errors.As(err, &custNFErr):
		writeError(w, http.StatusNotFound, custNFErr.Error())
	case errors.As(err, &itemDupErr):
		writeError(w, http.StatusConflict, itemDupErr.Error())
	case errors.As(err, &custDupErr):
		writeError(w, http.StatusConflict, custDupErr.Error())
	case errors.Is(err, billing.ErrNoOpenInvoice):
		writeError(w, http.StatusConflict, billing.ErrNoOpenInvoice.Error())
	case errors.As(err, &formatErr):
		writeError(w, http.StatusBadRequest, formatErr.Error())
	case errors.As(err, &exportIOErr):
		zctx.From(r.Context()).Error("Export failed",
			zap.String("path", exportIOErr.Path),
			zap.Error(exportIOErr.Err),
		)
		writeError(w, http.StatusInternalServerError, "export failed: "+exportIOErr.Path)
	default:
		zctx.From(r.Context()).Error("Request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
