package export

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/invoicing/internal/domain/invoice"
)

const documentIndent = 4

// EncodeDocument writes snap as a JSON object:
//
//	{"customer": "...", "total": 0, "lines": [{"itemName": "...", "quantity": 1, "subtotal": 0}]}
//
// Keys are emitted in that order and amounts are written from their exact
// decimal representation.
func EncodeDocument(w io.Writer, snap invoice.Snapshot) error {
	var e jx.Encoder
	e.SetIdent(documentIndent)

	e.ObjStart()
	e.FieldStart("customer")
	e.Str(snap.Customer)
	e.FieldStart("total")
	writeAmount(&e, snap.Total)
	e.FieldStart("lines")
	e.ArrStart()
	for _, l := range snap.Lines {
		e.ObjStart()
		e.FieldStart("itemName")
		e.Str(l.ItemName)
		e.FieldStart("quantity")
		e.Int(l.Quantity)
		e.FieldStart("subtotal")
		writeAmount(&e, l.Subtotal)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	if _, err := w.Write(e.Bytes()); err != nil {
		return errors.Wrap(err, "write document")
	}
	return nil
}

func writeAmount(e *jx.Encoder, amount decimal.Decimal) {
	e.Num(jx.Num(amount.String()))
}
