package search

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("no matching window")

// NotFoundError reports a search that exhausted the sequence without a match.
type NotFoundError struct {
	Search string
	// Scanned is the number of windows examined before exhaustion.
	Scanned int
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s search: %s after %d windows", e.Search, ErrNotFound.Error(), e.Scanned)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
