package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies the pricing variant of a catalog item.
type Kind string

const (
	// KindPhysical items are billed at their list price.
	KindPhysical Kind = "physical"
	// KindDigital items are billed at 90% of their list price.
	KindDigital Kind = "digital"
)

// digitalRate is the share of the list price billed for digital items.
var digitalRate = decimal.RequireFromString("0.9")

// InvalidPriceError indicates an attempt to set a negative price.
type InvalidPriceError struct {
	Price decimal.Decimal
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("price must not be negative, got %s", e.Price)
}

// Item is a sellable catalog entry. The shared payload (code, name, price)
// lives on every item; Weight is meaningful only for physical items and
// LicenseKey only for digital ones.
//
// Items are handed out as pointers and shared with invoice lines, so a price
// change made through SetPrice is visible to every line referencing the item.
type Item struct {
	kind       Kind
	code       string
	name       string
	price      decimal.Decimal
	weight     decimal.Decimal
	licenseKey string
}

// NewPhysical creates a physical item. It fails with *InvalidPriceError when
// price is negative.
func NewPhysical(code, name string, price, weight decimal.Decimal) (*Item, error) {
	it := &Item{kind: KindPhysical, code: code, name: name, weight: weight}
	if err := it.SetPrice(price); err != nil {
		return nil, err
	}
	return it, nil
}

// NewDigital creates a digital item. It fails with *InvalidPriceError when
// price is negative.
func NewDigital(code, name string, price decimal.Decimal, licenseKey string) (*Item, error) {
	it := &Item{kind: KindDigital, code: code, name: name, licenseKey: licenseKey}
	if err := it.SetPrice(price); err != nil {
		return nil, err
	}
	return it, nil
}

func (i *Item) Kind() Kind              { return i.kind }
func (i *Item) Code() string            { return i.code }
func (i *Item) Name() string            { return i.name }
func (i *Item) Price() decimal.Decimal  { return i.price }
func (i *Item) Weight() decimal.Decimal { return i.weight }
func (i *Item) LicenseKey() string      { return i.licenseKey }

// SetPrice replaces the list price. A negative value is rejected and the
// previous price is kept.
func (i *Item) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return &InvalidPriceError{Price: price}
	}
	i.price = price
	return nil
}

// EffectivePrice returns the price actually billed for one unit, after the
// discount policy of the item's kind.
func (i *Item) EffectivePrice() decimal.Decimal {
	switch i.kind {
	case KindDigital:
		return i.price.Mul(digitalRate)
	default:
		return i.price
	}
}
