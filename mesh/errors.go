package mesh

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange matches every bounds failure via errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexRangeError carries the offending index and the valid inclusive range.
type IndexRangeError struct {
	What     string
	Index    int
	Min, Max int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("%s %d outside valid range [%d, %d]", e.What, e.Index, e.Min, e.Max)
}

func (e *IndexRangeError) Unwrap() error { return ErrIndexOutOfRange }

func indexError(what string, index, min, max int) error {
	return &IndexRangeError{What: what, Index: index, Min: min, Max: max}
}
