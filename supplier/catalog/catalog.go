// Package catalog provides a Supplier backed by a fixed price list.
package catalog

import (
	"fmt"

	"github.com/ineyio/partquote"
)

// Supplier answers from an in-memory price list. It is immutable after
// construction and safe for concurrent use.
type Supplier struct {
	name   string
	prices map[partquote.Part]float64
}

var (
	_ partquote.Supplier = (*Supplier)(nil)
	_ partquote.Named    = (*Supplier)(nil)
)

// New creates a catalog supplier. Prices must be finite and non-negative.
func New(name string, prices map[partquote.Part]float64) (*Supplier, error) {
	copied := make(map[partquote.Part]float64, len(prices))
	for part, price := range prices {
		if !partquote.ValidPrice(price) {
			return nil, fmt.Errorf("catalog: %s: invalid price %v for %s", name, price, part)
		}
		copied[part] = price
	}
	return &Supplier{name: name, prices: copied}, nil
}

func (s *Supplier) Name() string { return s.name }

func (s *Supplier) HasPart(part partquote.Part) bool {
	_, ok := s.prices[part]
	return ok
}

func (s *Supplier) Price(part partquote.Part) float64 {
	return s.prices[part]
}

// Len returns the number of parts in the price list.
func (s *Supplier) Len() int { return len(s.prices) }

// FromConfig builds one catalog supplier per configured supplier, in
// config order.
func FromConfig(cfg partquote.Config) ([]partquote.Supplier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	suppliers := make([]partquote.Supplier, 0, len(cfg.Suppliers))
	for _, sc := range cfg.Suppliers {
		s, err := New(sc.Name, sc.PriceList())
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, nil
}
