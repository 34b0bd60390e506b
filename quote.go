package partquote

import (
	"math"
	"strconv"
	"strings"
)

// Line is a winning price for a single part.
type Line struct {
	Part  Part
	Price float64
}

// ValidPrice reports whether p is a finite, non-negative price.
func ValidPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}

// Quote is the result of a pricing request. It holds at most one line per
// category and is never mutated after construction, so two Quotes can be
// compared with == or Equal.
type Quote struct {
	head Line
	body Line
}

// NewQuote builds a Quote from lines. A later line replaces an earlier line
// of the same category; lines with an unknown category are ignored.
func NewQuote(lines ...Line) Quote {
	var q Quote
	for _, l := range lines {
		switch l.Part.Category {
		case CategoryHead:
			q.head = l
		case CategoryBody:
			q.body = l
		}
	}
	return q
}

// Head returns the head line, if the quote has one.
func (q Quote) Head() (Line, bool) {
	return q.head, !q.head.Part.IsZero()
}

// Body returns the body line, if the quote has one.
func (q Quote) Body() (Line, bool) {
	return q.body, !q.body.Part.IsZero()
}

// Lines returns the quote's lines, head first.
func (q Quote) Lines() []Line {
	var lines []Line
	if l, ok := q.Head(); ok {
		lines = append(lines, l)
	}
	if l, ok := q.Body(); ok {
		lines = append(lines, l)
	}
	return lines
}

// Total returns the sum of all line prices.
func (q Quote) Total() float64 {
	var total float64
	for _, l := range q.Lines() {
		total += l.Price
	}
	return total
}

// IsZero reports whether the quote has no lines.
func (q Quote) IsZero() bool { return q == Quote{} }

// Equal reports whether both quotes hold the same (part, price) pairs.
func (q Quote) Equal(other Quote) bool { return q == other }

func (q Quote) String() string {
	lines := q.Lines()
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.Part.String()+"="+strconv.FormatFloat(l.Price, 'f', -1, 64))
	}
	return "Quote{" + strings.Join(parts, ", ") + "}"
}
