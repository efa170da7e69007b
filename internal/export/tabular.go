package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/xenking/invoicing/internal/domain/invoice"
)

// Rows returns the table written by EncodeTabular: the customer and total
// rows, an empty separator row, a header row and one row per line.
func Rows(snap invoice.Snapshot) [][]string {
	rows := make([][]string, 0, 4+len(snap.Lines))
	rows = append(rows,
		[]string{"Customer", snap.Customer},
		[]string{"Total", snap.Total.String()},
		[]string{},
		[]string{"Item", "Quantity", "Subtotal"},
	)
	for _, l := range snap.Lines {
		rows = append(rows, []string{l.ItemName, strconv.Itoa(l.Quantity), l.Subtotal.String()})
	}
	return rows
}

// EncodeTabular writes snap as CRLF-terminated CSV.
func EncodeTabular(w io.Writer, snap invoice.Snapshot) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.WriteAll(Rows(snap)); err != nil {
		return errors.Wrap(err, "write table")
	}
	return nil
}
