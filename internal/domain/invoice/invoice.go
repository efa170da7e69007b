// Package invoice implements the invoice aggregate: an ordered set of lines
// bound to one customer, with a total that is kept in step with the lines.
package invoice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xenking/invoicing/internal/domain/catalog"
	"github.com/xenking/invoicing/internal/domain/customer"
)

// InvalidQuantityError indicates a line quantity below one.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0, got %d", e.Quantity)
}

// Line pairs a catalog item with a quantity. The item is shared with the
// catalog, not copied: a later price change on the item changes Subtotal.
type Line struct {
	item     *catalog.Item
	quantity int
}

// NewLine returns a line for quantity units of item.
func NewLine(item *catalog.Item, quantity int) (*Line, error) {
	if quantity <= 0 {
		return nil, &InvalidQuantityError{Quantity: quantity}
	}
	return &Line{item: item, quantity: quantity}, nil
}

func (l *Line) Item() *catalog.Item { return l.item }
func (l *Line) Quantity() int       { return l.quantity }

// Subtotal is the item's effective price times the quantity, read from the
// item on every call.
func (l *Line) Subtotal() decimal.Decimal {
	return l.item.EffectivePrice().Mul(decimal.NewFromInt(int64(l.quantity)))
}

// Invoice is a mutable aggregate bound to a single customer. The total is
// recomputed on every change to the line sequence, so Total is O(1).
//
// Invoice is not safe for concurrent use.
type Invoice struct {
	customer *customer.Customer
	lines    []*Line
	total    decimal.Decimal
}

// New returns an empty invoice for c.
func New(c *customer.Customer) *Invoice {
	return &Invoice{customer: c, total: decimal.Zero}
}

// Customer returns the customer the invoice was opened for.
func (inv *Invoice) Customer() *customer.Customer {
	return inv.customer
}

// Lines returns the lines in insertion order. The slice is a copy.
func (inv *Invoice) Lines() []*Line {
	out := make([]*Line, len(inv.lines))
	copy(out, inv.lines)
	return out
}

// LineCount returns the number of lines.
func (inv *Invoice) LineCount() int {
	return len(inv.lines)
}

// Total returns the sum of line subtotals as of the last recomputation.
func (inv *Invoice) Total() decimal.Decimal {
	return inv.total
}

// AddLine appends a line for quantity units of item. A non-positive quantity
// fails with *InvalidQuantityError and leaves the invoice unchanged.
func (inv *Invoice) AddLine(item *catalog.Item, quantity int) error {
	line, err := NewLine(item, quantity)
	if err != nil {
		return err
	}
	inv.lines = append(inv.lines, line)
	inv.Recalculate()
	return nil
}

// RemoveLine deletes the line at index. An index outside [0, LineCount())
// is ignored: it usually comes from a stale selection.
func (inv *Invoice) RemoveLine(index int) {
	if index < 0 || index >= len(inv.lines) {
		return
	}
	inv.lines = append(inv.lines[:index], inv.lines[index+1:]...)
	inv.Recalculate()
}

// Recalculate rebuilds the total from the current subtotals. Structural
// changes call it already; callers that change the price of a shared item
// call it to bring the cached total up to date.
func (inv *Invoice) Recalculate() {
	total := decimal.Zero
	for _, l := range inv.lines {
		total = total.Add(l.Subtotal())
	}
	inv.total = total
}
