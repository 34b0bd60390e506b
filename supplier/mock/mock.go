package mock

import (
	"sync/atomic"

	"github.com/ineyio/partquote"
)

// Supplier is a mock supplier for testing. It counts HasPart and Price
// calls so tests can assert which suppliers were asked for a price.
type Supplier struct {
	name      string
	prices    map[partquote.Part]float64
	priceFunc func(partquote.Part) float64

	hasPartCalls atomic.Int64
	priceCalls   atomic.Int64
}

var (
	_ partquote.Supplier = (*Supplier)(nil)
	_ partquote.Named    = (*Supplier)(nil)
)

// Option configures a mock Supplier.
type Option func(*Supplier)

// New creates a mock supplier with the given options. With no options it
// stocks nothing.
func New(opts ...Option) *Supplier {
	s := &Supplier{
		name:   "mock",
		prices: make(map[partquote.Part]float64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithName sets the supplier name.
func WithName(name string) Option {
	return func(s *Supplier) { s.name = name }
}

// WithPart stocks part at price.
func WithPart(part partquote.Part, price float64) Option {
	return func(s *Supplier) { s.prices[part] = price }
}

// WithPriceFunc overrides the price returned for stocked parts.
func WithPriceFunc(fn func(partquote.Part) float64) Option {
	return func(s *Supplier) { s.priceFunc = fn }
}

func (s *Supplier) Name() string { return s.name }

func (s *Supplier) HasPart(part partquote.Part) bool {
	s.hasPartCalls.Add(1)
	_, ok := s.prices[part]
	return ok
}

func (s *Supplier) Price(part partquote.Part) float64 {
	s.priceCalls.Add(1)
	if s.priceFunc != nil {
		return s.priceFunc(part)
	}
	return s.prices[part]
}

// HasPartCalls returns the number of HasPart calls.
func (s *Supplier) HasPartCalls() int64 { return s.hasPartCalls.Load() }

// PriceCalls returns the number of Price calls.
func (s *Supplier) PriceCalls() int64 { return s.priceCalls.Load() }
