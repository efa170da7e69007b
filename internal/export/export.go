// Package export serialises invoice snapshots to a JSON document or a CSV
// table and writes them to files named after the customer.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// Format selects an export serialisation.
type Format string

const (
	// FormatDocument is the structured JSON document.
	FormatDocument Format = "document"
	// FormatTabular is the CSV table.
	FormatTabular Format = "tabular"
)

// Formats lists every supported format in a stable order.
var Formats = []Format{FormatDocument, FormatTabular}

// UnknownFormatError indicates an unsupported format name.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown export format %q", e.Format)
}

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatDocument, FormatTabular:
		return f, nil
	default:
		return "", &UnknownFormatError{Format: s}
	}
}

// Ext returns the file extension for the format, without the leading dot.
func (f Format) Ext() string {
	switch f {
	case FormatDocument:
		return "json"
	case FormatTabular:
		return "csv"
	default:
		return string(f)
	}
}

// FileName returns the deterministic file name for an export of the invoice
// of the customer identified by nationalID.
func FileName(f Format, nationalID string) string {
	return "invoice_" + nationalID + "." + f.Ext()
}

// InvalidNameError indicates a national id that cannot be part of an export
// file name.
type InvalidNameError struct {
	NationalID string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("national id %q cannot be used in a file name", e.NationalID)
}

// CheckName fails with *InvalidNameError unless nationalID produces a plain
// file name that stays inside the export directory.
func CheckName(nationalID string) error {
	if nationalID == "" ||
		strings.ContainsAny(nationalID, "/\\\x00") ||
		!filepath.IsLocal(FileName(FormatDocument, nationalID)) {
		return &InvalidNameError{NationalID: nationalID}
	}
	return nil
}

// Display renders an amount with two decimal places. It is meant for human
// facing views only; exported payloads carry the exact value.
func Display(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
