package invoice

import "github.com/shopspring/decimal"

// Snapshot is a read-only copy of an invoice at one point in time.
type Snapshot struct {
	Customer   string
	NationalID string
	Total      decimal.Decimal
	Lines      []LineSnapshot
}

// LineSnapshot is the exported view of a single line.
type LineSnapshot struct {
	ItemName string
	Quantity int
	Subtotal decimal.Decimal
}

// Snapshot captures the invoice state. Later mutations of the invoice or its
// items do not affect the returned value. The snapshot total is the sum of the
// captured subtotals, so the two always agree inside one snapshot.
func (inv *Invoice) Snapshot() Snapshot {
	lines := make([]LineSnapshot, len(inv.lines))
	total := decimal.Zero
	for i, l := range inv.lines {
		sub := l.Subtotal()
		lines[i] = LineSnapshot{
			ItemName: l.item.Name(),
			Quantity: l.quantity,
			Subtotal: sub,
		}
		total = total.Add(sub)
	}
	return Snapshot{
		Customer:   inv.customer.Describe(),
		NationalID: inv.customer.NationalID,
		Total:      total,
		Lines:      lines,
	}
}
