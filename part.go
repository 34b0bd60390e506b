package partquote

import (
	"fmt"
	"strings"
)

// Category discriminates the kind of part being requested.
type Category string

const (
	CategoryHead Category = "head"
	CategoryBody Category = "body"
)

// Head options.
const (
	InfraredVision = "infrared-vision"
	NightVision    = "night-vision"
	StandardVision = "standard-vision"
)

// Body options.
const (
	Square      = "square"
	Round       = "round"
	Rectangular = "rectangular"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryHead || c == CategoryBody
}

// Part identifies a requested component: a category plus the option chosen
// within that category.
type Part struct {
	Category Category
	Option   string
}

// Head returns a head part with the given option.
func Head(option string) Part { return Part{Category: CategoryHead, Option: option} }

// Body returns a body part with the given option.
func Body(option string) Part { return Part{Category: CategoryBody, Option: option} }

// IsZero reports whether p is the zero Part.
func (p Part) IsZero() bool { return p == Part{} }

func (p Part) String() string {
	return string(p.Category) + ":" + p.Option
}

// ParsePart parses the "category:option" form, e.g. "head:infrared-vision".
func ParsePart(s string) (Part, error) {
	cat, opt, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || opt == "" {
		return Part{}, fmt.Errorf("partquote: invalid part %q: want category:option", s)
	}
	if !Category(cat).Valid() {
		return Part{}, fmt.Errorf("partquote: invalid part %q: unknown category %q", s, cat)
	}
	return Part{Category: Category(cat), Option: opt}, nil
}
