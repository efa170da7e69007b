// Package customer holds the customer record and its registry.
package customer

import "fmt"

// NotFoundError indicates that no customer is registered under NationalID.
type NotFoundError struct {
	NationalID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("customer %s not found", e.NationalID)
}

// DuplicateError indicates that NationalID is already registered.
type DuplicateError struct {
	NationalID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("customer %s already registered", e.NationalID)
}

// Customer is an immutable identity record referenced by invoices.
type Customer struct {
	FirstName  string
	LastName   string
	NationalID string
}

// New returns a Customer. Field presence is checked by the registering caller.
func New(firstName, lastName, nationalID string) *Customer {
	return &Customer{
		FirstName:  firstName,
		LastName:   lastName,
		NationalID: nationalID,
	}
}

// Describe returns the display form "First Last (NationalID)".
func (c *Customer) Describe() string {
	return fmt.Sprintf("%s %s (%s)", c.FirstName, c.LastName, c.NationalID)
}

// Registry is an in-memory set of customers keyed by national id, listed in
// registration order. Registry is not safe for concurrent use.
type Registry struct {
	customers []*Customer
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds c to the registry.
func (r *Registry) Register(c *Customer) error {
	if r.index(c.NationalID) >= 0 {
		return &DuplicateError{NationalID: c.NationalID}
	}
	r.customers = append(r.customers, c)
	return nil
}

// Find returns the customer registered under nationalID.
func (r *Registry) Find(nationalID string) (*Customer, error) {
	i := r.index(nationalID)
	if i < 0 {
		return nil, &NotFoundError{NationalID: nationalID}
	}
	return r.customers[i], nil
}

// Remove drops the customer from the registry. Invoices that already hold the
// customer keep their reference.
func (r *Registry) Remove(nationalID string) error {
	i := r.index(nationalID)
	if i < 0 {
		return &NotFoundError{NationalID: nationalID}
	}
	r.customers = append(r.customers[:i], r.customers[i+1:]...)
	return nil
}

// List returns the registered customers in registration order.
func (r *Registry) List() []*Customer {
	out := make([]*Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

func (r *Registry) index(nationalID string) int {
	for i, c := range r.customers {
		if c.NationalID == nationalID {
			return i
		}
	}
	return -1
}
