package digits

import (
	"strings"
	"unicode/utf8"
)

// Sequence is an ordered, read-only run of decimal digits (0-9).
type Sequence struct {
	d []uint8
}

// Parse extracts the fractional digits of a decimal literal.
//
// Everything up to and including the first '.' is the integer part and is
// dropped; text without a '.' keeps all of its digits. Any rune that is not
// an ASCII decimal digit is skipped.
func Parse(raw string) (Sequence, error) {
	frac := raw
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		frac = raw[i+1:]
	}

	d := make([]uint8, 0, len(frac))
	for i := 0; i < len(frac); i++ {
		c := frac[i]
		if c >= '0' && c <= '9' {
			d = append(d, c-'0')
		}
	}
	if len(d) == 0 {
		return Sequence{}, &ParseError{Kind: ErrNoDigits, Runes: utf8.RuneCountInString(raw)}
	}
	return Sequence{d: d}, nil
}

// Len returns the number of digits.
func (s Sequence) Len() int { return len(s.d) }

// At returns the digit at index i. It panics if i is out of range, like a
// slice index.
func (s Sequence) At(i int) uint8 { return s.d[i] }

func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s.d))
	for _, v := range s.d {
		b.WriteByte('0' + v)
	}
	return b.String()
}
