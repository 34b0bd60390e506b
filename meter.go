package partquote

import "time"

// Meter observes pricing lookups for monitoring/logging.
type Meter interface {
	// OnQuote is called once per part lookup, whether or not it succeeded.
	OnQuote(event QuoteEvent)
}

// QuoteEvent describes the outcome of a single part lookup.
type QuoteEvent struct {
	RequestID string
	Part      Part
	Asked     int // suppliers asked HasPart
	Stocking  int // suppliers that stock the part
	Supplier  string
	Price     float64
	Found     bool
	Duration  time.Duration
}
