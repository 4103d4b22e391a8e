package scan

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("window out of range")

// RangeError is returned when fewer than Width digits remain at the cursor.
type RangeError struct {
	Offset int
	Len    int
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: offset %d needs %d digits, sequence has %d", ErrOutOfRange.Error(), e.Offset, Width, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
