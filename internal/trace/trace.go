// Package trace keeps a deterministic record of the decisions each search
// made while scanning.
package trace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ScanTrace is the canonical record of one run over a digit sequence.
//
// Invariants:
//   - SourceHash identifies the scanned digits (see HashDigits).
//   - Events hold logical decisions only: no timestamps, no durations, no
//     error strings.
//
// Two runs over the same digits with the same searches produce byte-identical
// CanonicalJSON and therefore the same Hash.
type ScanTrace struct {
	SourceHash string
	Events     []Event
}

// EventKind discriminates Event. The string values are part of the canonical
// bytes; do not rename.
type EventKind string

const (
	EventCandidateExcluded EventKind = "CandidateExcluded"
	EventWindowMatched     EventKind = "WindowMatched"
	EventSearchExhausted   EventKind = "SearchExhausted"
)

// Event is a single search decision at a window offset.
//
// For EventSearchExhausted, Offset is the cursor at which no full window was
// left and Value is zero.
type Event struct {
	Kind   EventKind
	Search string
	Offset int
	Value  uint64

	// Reason is a stable code explaining an exclusion, e.g. "KnownDecoy".
	Reason string
}

// Validate checks basic invariants and returns a descriptive error.
func (t *ScanTrace) Validate() error {
	if t == nil {
		return errors.New("trace is nil")
	}
	if t.SourceHash == "" {
		return errors.New("sourceHash is required")
	}
	for i, e := range t.Events {
		if e.Kind == "" {
			return fmt.Errorf("events[%d].kind is required", i)
		}
		if e.Search == "" {
			return fmt.Errorf("events[%d].search is required", i)
		}
		if e.Offset < 0 {
			return fmt.Errorf("events[%d].offset is negative", i)
		}
	}
	return nil
}

// Canonicalize sorts events by (search, offset, kind, reason).
func (t *ScanTrace) Canonicalize() {
	if t == nil {
		return
	}
	sort.SliceStable(t.Events, func(i, j int) bool {
		a, b := t.Events[i], t.Events[j]
		if a.Search != b.Search {
			return a.Search < b.Search
		}
		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}
		if kindOrder(a.Kind) != kindOrder(b.Kind) {
			return kindOrder(a.Kind) < kindOrder(b.Kind)
		}
		return a.Reason < b.Reason
	})
}

func kindOrder(k EventKind) int {
	switch k {
	case EventCandidateExcluded:
		return 10
	case EventWindowMatched:
		return 20
	case EventSearchExhausted:
		return 30
	default:
		return 1000
	}
}

// CanonicalJSON returns the canonical JSON encoding of the trace.
// It works on a copy and leaves the receiver's slice untouched.
func (t ScanTrace) CanonicalJSON() ([]byte, error) {
	c := ScanTrace{SourceHash: t.SourceHash}
	c.Events = make([]Event, len(t.Events))
	copy(c.Events, t.Events)
	c.Canonicalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(&c)
}

// Hash returns the sha256 hex of the canonical JSON bytes.
func (t ScanTrace) Hash() (string, error) {
	b, err := t.CanonicalJSON()
	if err != nil {
		return "", err
	}
	return ComputeTraceHash(b), nil
}

// MarshalJSON fixes field order.
func (t ScanTrace) MarshalJSON() ([]byte, error) {
	if t.SourceHash == "" {
		return nil, errors.New("sourceHash is required")
	}
	var buf bytes.Buffer
	buf.WriteString(`{"sourceHash":`)
	sh, _ := json.Marshal(t.SourceHash)
	buf.Write(sh)

	buf.WriteString(`,"events":[`)
	for i := range t.Events {
		if i > 0 {
			buf.WriteByte(',')
		}
		eb, err := json.Marshal(t.Events[i])
		if err != nil {
			return nil, err
		}
		buf.Write(eb)
	}
	buf.WriteString("]}")
	return buf.Bytes(), nil
}

// MarshalJSON fixes field order and omits an empty reason. Value is encoded
// as a string so that 64-bit values survive JSON consumers that use floats.
func (e Event) MarshalJSON() ([]byte, error) {
	if e.Kind == "" {
		return nil, errors.New("kind is required")
	}
	var buf bytes.Buffer
	buf.WriteString(`{"kind":`)
	kb, _ := json.Marshal(string(e.Kind))
	buf.Write(kb)

	buf.WriteString(`,"search":`)
	sb, _ := json.Marshal(e.Search)
	buf.Write(sb)

	buf.WriteString(`,"offset":`)
	buf.WriteString(strconv.Itoa(e.Offset))

	buf.WriteString(`,"value":"`)
	buf.WriteString(strconv.FormatUint(e.Value, 10))
	buf.WriteByte('"')

	if e.Reason != "" {
		buf.WriteString(`,"reason":`)
		rb, _ := json.Marshal(e.Reason)
		buf.Write(rb)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
