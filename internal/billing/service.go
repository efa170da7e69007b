// Package billing is the entry point used by presentation layers: it owns the
// catalog, the customer registry and the invoice currently being edited.
package billing

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/invoicing/internal/domain/catalog"
	"github.com/xenking/invoicing/internal/domain/customer"
	"github.com/xenking/invoicing/internal/domain/invoice"
	"github.com/xenking/invoicing/internal/export"
)

// ErrNoOpenInvoice is returned by invoice operations before CreateInvoice.
var ErrNoOpenInvoice = errors.New("no open invoice")

// FieldRequiredError indicates that a mandatory registration field is empty.
type FieldRequiredError struct {
	Field string
}

func (e *FieldRequiredError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Exporter writes an invoice snapshot in the given format and returns where
// it was written.
type Exporter interface {
	Export(snap invoice.Snapshot, format export.Format) (string, error)
}

// Service implements registration, lookup and the invoice lifecycle.
//
// Service is not safe for concurrent use; callers that share one across
// goroutines must serialise access.
type Service struct {
	items     *catalog.Catalog
	customers *customer.Registry
	exporter  Exporter
	current   *invoice.Invoice
}

// NewService creates a Service with empty registries.
func NewService(exporter Exporter) *Service {
	return &Service{
		items:     catalog.New(),
		customers: customer.NewRegistry(),
		exporter:  exporter,
	}
}

// RegisterCustomer creates and registers a customer. All fields are required
// and the national id must be usable as an export file name
// (*export.InvalidNameError otherwise).
func (s *Service) RegisterCustomer(firstName, lastName, nationalID string) (*customer.Customer, error) {
	if err := required(
		field{"first name", firstName},
		field{"last name", lastName},
		field{"national id", nationalID},
	); err != nil {
		return nil, err
	}
	if err := export.CheckName(nationalID); err != nil {
		return nil, err
	}

	c := customer.New(firstName, lastName, nationalID)
	if err := s.customers.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveCustomer drops a customer from the registry. The current invoice, if
// it belongs to that customer, stays open.
func (s *Service) RemoveCustomer(nationalID string) error {
	return s.customers.Remove(nationalID)
}

// FindCustomer returns the customer registered under nationalID.
func (s *Service) FindCustomer(nationalID string) (*customer.Customer, error) {
	return s.customers.Find(nationalID)
}

// Customers lists the registered customers in registration order.
func (s *Service) Customers() []*customer.Customer {
	return s.customers.List()
}

// RegisterPhysicalItem creates and registers a physical item.
func (s *Service) RegisterPhysicalItem(code, name string, price, weight decimal.Decimal) (*catalog.Item, error) {
	if err := required(field{"code", code}, field{"name", name}); err != nil {
		return nil, err
	}

	item, err := catalog.NewPhysical(code, name, price, weight)
	if err != nil {
		return nil, err
	}
	return s.register(item)
}

// RegisterDigitalItem creates and registers a digital item.
func (s *Service) RegisterDigitalItem(code, name string, price decimal.Decimal, licenseKey string) (*catalog.Item, error) {
	if err := required(field{"code", code}, field{"name", name}, field{"license key", licenseKey}); err != nil {
		return nil, err
	}

	item, err := catalog.NewDigital(code, name, price, licenseKey)
	if err != nil {
		return nil, err
	}
	return s.register(item)
}

func (s *Service) register(item *catalog.Item) (*catalog.Item, error) {
	if err := s.items.Register(item); err != nil {
		return nil, err
	}
	return item, nil
}

// FindItem returns the item registered under code. The item is shared with
// invoice lines: change its price through UpdateItemPrice, since calling
// SetPrice directly leaves the open invoice total stale.
func (s *Service) FindItem(code string) (*catalog.Item, error) {
	return s.items.Find(code)
}

// Items lists the catalog in registration order.
func (s *Service) Items() []*catalog.Item {
	return s.items.List()
}

// UpdateItemPrice changes the price of a registered item. Lines referencing
// the item see the new price; the open invoice total is recomputed.
func (s *Service) UpdateItemPrice(code string, price decimal.Decimal) error {
	item, err := s.items.Find(code)
	if err != nil {
		return err
	}
	if err := item.SetPrice(price); err != nil {
		return err
	}
	if s.current != nil {
		s.current.Recalculate()
	}
	return nil
}

// CreateInvoice opens a new, empty invoice for the customer and makes it the
// current invoice. A previously open invoice is discarded.
func (s *Service) CreateInvoice(nationalID string) (*invoice.Invoice, error) {
	c, err := s.customers.Find(nationalID)
	if err != nil {
		return nil, err
	}
	s.current = invoice.New(c)
	return s.current, nil
}

// CurrentInvoice returns the open invoice, if any.
func (s *Service) CurrentInvoice() (*invoice.Invoice, bool) {
	return s.current, s.current != nil
}

// AddLineToInvoice adds quantity units of the item registered under code to
// the current invoice.
func (s *Service) AddLineToInvoice(code string, quantity int) error {
	if s.current == nil {
		return ErrNoOpenInvoice
	}
	item, err := s.items.Find(code)
	if err != nil {
		return err
	}
	return s.current.AddLine(item, quantity)
}

// RemoveLineFromInvoice removes the line at index from the current invoice.
// Indexes outside the line range are ignored.
func (s *Service) RemoveLineFromInvoice(index int) error {
	if s.current == nil {
		return ErrNoOpenInvoice
	}
	s.current.RemoveLine(index)
	return nil
}

// ExportCurrentInvoice writes a snapshot of the current invoice in format
// and returns the written path. The invoice is not modified, whatever the
// outcome.
func (s *Service) ExportCurrentInvoice(format export.Format) (string, error) {
	if s.current == nil {
		return "", ErrNoOpenInvoice
	}
	path, err := s.exporter.Export(s.current.Snapshot(), format)
	if err != nil {
		return "", errors.Wrapf(err, "export %s", format)
	}
	return path, nil
}

type field struct {
	name  string
	value string
}

func required(fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return &FieldRequiredError{Field: f.name}
		}
	}
	return nil
}
