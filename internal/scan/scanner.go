// Package scan reads fixed-width sliding windows out of a digit sequence.
package scan

import (
	"iter"

	"billboard/internal/digits"
)

// Width is the number of digits in a window.
const Width = 10

// Window is one Width-digit run read at Offset.
type Window struct {
	Offset int
	Value  uint64
	Sum    uint32
}

// Scanner walks a Sequence one digit at a time, yielding overlapping windows.
//
// A Scanner owns only its cursor; the Sequence is shared read-only. To scan
// again from the start, construct a new Scanner over the same Sequence.
type Scanner struct {
	seq    digits.Sequence
	cursor int
}

func New(seq digits.Sequence) *Scanner {
	return &Scanner{seq: seq}
}

// Offset returns the cursor, the start of the next window.
func (s *Scanner) Offset() int { return s.cursor }

// Remaining returns how many full windows can still be read.
func (s *Scanner) Remaining() int {
	n := s.seq.Len() - Width - s.cursor + 1
	if n < 0 {
		return 0
	}
	return n
}

// Next reads the window at the cursor and advances by one digit.
// When fewer than Width digits remain it returns a *RangeError and the cursor
// does not move.
func (s *Scanner) Next() (Window, error) {
	if s.cursor+Width > s.seq.Len() {
		return Window{}, &RangeError{Offset: s.cursor, Len: s.seq.Len()}
	}
	w := Window{Offset: s.cursor}
	for i := s.cursor; i < s.cursor+Width; i++ {
		d := s.seq.At(i)
		w.Value = w.Value*10 + uint64(d)
		w.Sum += uint32(d)
	}
	s.cursor++
	return w, nil
}

// NextWindowValue returns the integer value of the next window.
func (s *Scanner) NextWindowValue() (uint64, error) {
	w, err := s.Next()
	return w.Value, err
}

// NextWindowValueAndSum returns the integer value and digit sum of the next
// window.
func (s *Scanner) NextWindowValueAndSum() (uint64, uint32, error) {
	w, err := s.Next()
	return w.Value, w.Sum, err
}

// Windows yields the remaining windows in order, advancing the scanner.
// The sequence ends at exhaustion; breaking early leaves the cursor just past
// the last yielded window.
func (s *Scanner) Windows() iter.Seq[Window] {
	return func(yield func(Window) bool) {
		for s.Remaining() > 0 {
			w, err := s.Next()
			if err != nil || !yield(w) {
				return
			}
		}
	}
}
