package partquote

// Supplier is the interface that part sources must implement.
type Supplier interface {
	// HasPart returns true if this supplier stocks the given part.
	HasPart(part Part) bool

	// Price returns the supplier's price for a part it stocks.
	// Callers must only invoke it after HasPart returned true.
	Price(part Part) float64
}

// Named is optionally implemented by suppliers that carry a display name.
type Named interface {
	Name() string
}

// Offer is one stocking supplier's price for a part.
type Offer struct {
	Supplier string
	Part     Part
	Price    float64
}
