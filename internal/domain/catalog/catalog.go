// Package catalog holds the sellable items and the registry that owns them.
package catalog

import "fmt"

// ItemNotFoundError indicates that no item is registered under Code.
type ItemNotFoundError struct {
	Code string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %s not found", e.Code)
}

// DuplicateItemError indicates that Code is already registered.
type DuplicateItemError struct {
	Code string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("item %s already registered", e.Code)
}

// Catalog is an in-memory registry of items keyed by code. It keeps
// registration order for listings. Catalog is not safe for concurrent use.
type Catalog struct {
	items  []*Item
	byCode map[string]*Item
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{byCode: make(map[string]*Item)}
}

// Register adds item to the catalog. Codes are unique within a catalog.
func (c *Catalog) Register(item *Item) error {
	if _, ok := c.byCode[item.Code()]; ok {
		return &DuplicateItemError{Code: item.Code()}
	}
	c.items = append(c.items, item)
	c.byCode[item.Code()] = item
	return nil
}

// Find returns the item registered under code.
func (c *Catalog) Find(code string) (*Item, error) {
	item, ok := c.byCode[code]
	if !ok {
		return nil, &ItemNotFoundError{Code: code}
	}
	return item, nil
}

// List returns all items in registration order. The slice is a copy; the
// items are shared.
func (c *Catalog) List() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}
