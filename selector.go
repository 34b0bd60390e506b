package partquote

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Selector quotes parts at the lowest price offered by the suppliers that
// stock them.
type Selector struct {
	suppliers []Supplier
	meter     Meter
	newID     func() string
}

// Option configures a Selector.
type Option func(*Selector)

// WithMeter sets the meter.
func WithMeter(m Meter) Option {
	return func(s *Selector) { s.meter = m }
}

// WithRequestIDFunc sets the generator for per-request correlation IDs.
func WithRequestIDFunc(fn func() string) Option {
	return func(s *Selector) { s.newID = fn }
}

// New creates a Selector over the given suppliers. The slice may be empty,
// in which case every lookup fails with ErrPartUnavailable.
func New(suppliers []Supplier, opts ...Option) *Selector {
	s := &Selector{
		suppliers: append([]Supplier(nil), suppliers...),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Apply defaults after options.
	if s.meter == nil {
		s.meter = &noopMeter{}
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}

	return s
}

// Quote returns a Quote for a single part at the cheapest stocking
// supplier's price.
func (s *Selector) Quote(part Part) (Quote, error) {
	if err := checkCategory(part); err != nil {
		return Quote{}, err
	}

	line, err := s.cheapest(s.newID(), part)
	if err != nil {
		return Quote{}, err
	}
	return NewQuote(line), nil
}

// QuotePair quotes a head and a body independently and combines the result.
// If either part is unavailable the whole call fails and no partial Quote
// is returned.
func (s *Selector) QuotePair(head, body Part) (Quote, error) {
	if head.Category != CategoryHead {
		return Quote{}, &PartError{Part: head, Err: fmt.Errorf("%w: want %s", ErrCategoryMismatch, CategoryHead)}
	}
	if body.Category != CategoryBody {
		return Quote{}, &PartError{Part: body, Err: fmt.Errorf("%w: want %s", ErrCategoryMismatch, CategoryBody)}
	}

	requestID := s.newID()

	headLine, err := s.cheapest(requestID, head)
	if err != nil {
		return Quote{}, err
	}
	bodyLine, err := s.cheapest(requestID, body)
	if err != nil {
		return Quote{}, err
	}

	return NewQuote(headLine, bodyLine), nil
}

// Offers returns every stocking supplier's price for part, cheapest first.
// Suppliers with equal prices keep their configured order.
func (s *Selector) Offers(part Part) ([]Offer, error) {
	if err := checkCategory(part); err != nil {
		return nil, err
	}

	start := time.Now()

	var offers []Offer
	for i, sup := range s.suppliers {
		if !sup.HasPart(part) {
			continue
		}
		offers = append(offers, Offer{
			Supplier: supplierName(sup, i),
			Part:     part,
			Price:    sup.Price(part),
		})
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})

	event := QuoteEvent{
		RequestID: s.newID(),
		Part:      part,
		Asked:     len(s.suppliers),
		Stocking:  len(offers),
		Found:     len(offers) > 0,
		Duration:  time.Since(start),
	}
	if event.Found {
		event.Supplier = offers[0].Supplier
		event.Price = offers[0].Price
	}
	s.meter.OnQuote(event)

	if len(offers) == 0 {
		return nil, &PartError{Part: part, Err: ErrPartUnavailable}
	}
	return offers, nil
}

// cheapest scans every supplier once. Price is only read from suppliers
// whose HasPart returned true.
func (s *Selector) cheapest(requestID string, part Part) (Line, error) {
	start := time.Now()

	var (
		best     float64
		winner   string
		found    bool
		stocking int
	)
	for i, sup := range s.suppliers {
		if !sup.HasPart(part) {
			continue
		}
		stocking++

		price := sup.Price(part)
		if !found || price < best {
			best = price
			winner = supplierName(sup, i)
			found = true
		}
	}

	s.meter.OnQuote(QuoteEvent{
		RequestID: requestID,
		Part:      part,
		Asked:     len(s.suppliers),
		Stocking:  stocking,
		Supplier:  winner,
		Price:     best,
		Found:     found,
		Duration:  time.Since(start),
	})

	if !found {
		return Line{}, &PartError{Part: part, Err: ErrPartUnavailable}
	}
	return Line{Part: part, Price: best}, nil
}

func checkCategory(part Part) error {
	if !part.Category.Valid() {
		return &PartError{Part: part, Err: fmt.Errorf("%w: unknown category %q", ErrCategoryMismatch, part.Category)}
	}
	return nil
}

func supplierName(sup Supplier, index int) string {
	if n, ok := sup.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("supplier-%d", index)
}

// noopMeter is a meter that does nothing.
type noopMeter struct{}

func (m *noopMeter) OnQuote(QuoteEvent) {}
