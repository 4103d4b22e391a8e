package scan

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billboard/internal/digits"
)

func parseE(t *testing.T) digits.Sequence {
	t.Helper()
	seq, err := digits.Parse(digits.E)
	require.NoError(t, err)
	return seq
}

func sourceDigits(seq digits.Sequence, from, to int) []uint8 {
	out := make([]uint8, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, seq.At(i))
	}
	return out
}

func digitsOf(v uint64) []uint8 {
	s := fmt.Sprintf("%0*d", Width, v)
	out := make([]uint8, len(s))
	for i := range s {
		out[i] = s[i] - '0'
	}
	return out
}

func TestNextWindowValue_FirstWindowOfE(t *testing.T) {
	s := New(parseE(t))

	v, err := s.NextWindowValue()
	require.NoError(t, err)
	assert.Equal(t, uint64(7182818284), v)
	assert.Equal(t, 1, s.Offset())

	v, err = s.NextWindowValue()
	require.NoError(t, err)
	assert.Equal(t, uint64(1828182845), v)
}

func TestNext_RoundTripsSourceDigits(t *testing.T) {
	seq := parseE(t)
	s := New(seq)

	for c := 0; c+Width <= seq.Len(); c++ {
		w, err := s.Next()
		require.NoError(t, err)
		require.Equal(t, c, w.Offset)
		require.Equal(t, sourceDigits(seq, c, c+Width), digitsOf(w.Value), "offset %d", c)
	}
}

func TestNext_SumMatchesPaddedDigits(t *testing.T) {
	s := New(parseE(t))

	for w := range s.Windows() {
		var want uint32
		for _, d := range digitsOf(w.Value) {
			want += uint32(d)
		}
		require.Equal(t, want, w.Sum, "offset %d", w.Offset)
		require.LessOrEqual(t, w.Sum, uint32(90))
	}
}

func TestNext_ConsecutiveWindowsOverlapByNine(t *testing.T) {
	s := New(parseE(t))

	prev, err := s.Next()
	require.NoError(t, err)
	for s.Remaining() > 0 {
		cur, err := s.Next()
		require.NoError(t, err)

		p, c := digitsOf(prev.Value), digitsOf(cur.Value)
		require.Equal(t, p[1:], c[:Width-1], "offsets %d/%d", prev.Offset, cur.Offset)
		prev = cur
	}
}

func TestNextWindowValueAndSum(t *testing.T) {
	seq, err := digits.Parse("0.00000000019")
	require.NoError(t, err)
	s := New(seq)

	v, sum, err := s.NextWindowValueAndSum()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
	assert.Equal(t, uint32(1), sum)

	v, sum, err = s.NextWindowValueAndSum()
	require.NoError(t, err)
	assert.Equal(t, uint64(19), v)
	assert.Equal(t, uint32(10), sum)
}

func TestNext_OutOfRangeNeverPartial(t *testing.T) {
	seq, err := digits.Parse("0.12345678901")
	require.NoError(t, err)
	s := New(seq)
	require.Equal(t, 2, s.Remaining())

	_, err = s.NextWindowValue()
	require.NoError(t, err)
	_, err = s.NextWindowValue()
	require.NoError(t, err)
	require.Equal(t, 0, s.Remaining())

	v, err := s.NextWindowValue()
	require.Error(t, err)
	assert.Zero(t, v)
	assert.ErrorIs(t, err, ErrOutOfRange)

	var re *RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 2, re.Offset)
	assert.Equal(t, 11, re.Len)

	// The cursor stays put, so every further read fails the same way.
	_, _, err = s.NextWindowValueAndSum()
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 2, s.Offset())
}

func TestNext_ShortSequence(t *testing.T) {
	seq, err := digits.Parse("0.123")
	require.NoError(t, err)
	s := New(seq)

	assert.Equal(t, 0, s.Remaining())
	_, err = s.Next()
	assert.ErrorIs(t, err, ErrOutOfRange)

	var n int
	for range s.Windows() {
		n++
	}
	assert.Zero(t, n)
}

func TestWindows_AllZeroWindowIsNotExhaustion(t *testing.T) {
	seq, err := digits.Parse("0.000000000000")
	require.NoError(t, err)

	var got []Window
	for w := range New(seq).Windows() {
		got = append(got, w)
	}
	require.Len(t, got, 3)
	for i, w := range got {
		assert.Equal(t, Window{Offset: i}, w)
	}
}

func TestWindows_BreakLeavesCursorAfterLastYield(t *testing.T) {
	s := New(parseE(t))

	for w := range s.Windows() {
		if w.Offset == 4 {
			assert.Equal(t, uint64(8182845904), w.Value)
			break
		}
	}
	assert.Equal(t, 5, s.Offset())
}

func TestScanner_IndependentInstancesAgree(t *testing.T) {
	seq := parseE(t)
	a, b := New(seq), New(seq)

	for a.Remaining() > 0 {
		wa, errA := a.Next()
		wb, errB := b.Next()
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.Equal(t, wa, wb)
	}
	assert.Equal(t, 0, b.Remaining())
}
