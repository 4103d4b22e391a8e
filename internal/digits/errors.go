package digits

import (
	"errors"
	"fmt"
)

var ErrNoDigits = errors.New("no digits")

// ParseError reports literal text that produced an unusable Sequence.
type ParseError struct {
	// Kind is the failure class; nil reads as ErrNoDigits.
	Kind error
	// Runes is the number of runes inspected.
	Runes int
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	kind := ErrNoDigits
	if e.Kind != nil {
		kind = e.Kind
	}
	return fmt.Sprintf("parse digits: %s (inspected %d runes)", kind.Error(), e.Runes)
}

func (e *ParseError) Unwrap() error {
	if e.Kind == nil {
		return ErrNoDigits
	}
	return e.Kind
}
