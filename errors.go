package partquote

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrPartUnavailable  = errors.New("partquote: no supplier available for part")
	ErrCategoryMismatch = errors.New("partquote: part category mismatch")
)

// PartError wraps an error with the part that caused it.
type PartError struct {
	Part Part
	Err  error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("partquote: part=%s: %v", e.Part, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}

// IsUnavailable returns true if no supplier stocked a requested part.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrPartUnavailable)
}
