package trace

import (
	"bytes"
	"testing"
)

func TestCanonicalTraceStability_ByteForByte(t *testing.T) {
	trace1 := ScanTrace{
		SourceHash: "src",
		Events: []Event{
			{Kind: EventWindowMatched, Search: "prime", Offset: 98, Value: 7427466391},
			{Kind: EventCandidateExcluded, Search: "password", Offset: 0, Value: 7182818284, Reason: "KnownDecoy"},
			{Kind: EventWindowMatched, Search: "password", Offset: 126, Value: 5966290435},
		},
	}
	trace2 := ScanTrace{
		SourceHash: "src",
		Events: []Event{
			{Kind: EventWindowMatched, Search: "password", Offset: 126, Value: 5966290435},
			{Kind: EventWindowMatched, Search: "prime", Offset: 98, Value: 7427466391},
			{Kind: EventCandidateExcluded, Search: "password", Offset: 0, Value: 7182818284, Reason: "KnownDecoy"},
		},
	}

	b1, err := trace1.CanonicalJSON()
	if err != nil {
		t.Fatalf("canonical json (1): %v", err)
	}
	b2, err := trace2.CanonicalJSON()
	if err != nil {
		t.Fatalf("canonical json (2): %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatalf("expected identical bytes\n1=%s\n2=%s", string(b1), string(b2))
	}
}

func TestCanonicalJSON_FieldOrderAndOmission(t *testing.T) {
	tr := ScanTrace{
		SourceHash: "src",
		Events: []Event{
			{Kind: EventSearchExhausted, Search: "prime", Offset: 3},
			{Kind: EventCandidateExcluded, Search: "password", Offset: 4, Value: 8182845904, Reason: "KnownDecoy"},
		},
	}
	b, err := tr.CanonicalJSON()
	if err != nil {
		t.Fatalf("canonical json: %v", err)
	}
	expected := `{"sourceHash":"src","events":[` +
		`{"kind":"CandidateExcluded","search":"password","offset":4,"value":"8182845904","reason":"KnownDecoy"},` +
		`{"kind":"SearchExhausted","search":"prime","offset":3,"value":"0"}]}`
	if string(b) != expected {
		t.Fatalf("unexpected canonical bytes\nexpected=%s\nactual  =%s", expected, string(b))
	}
}

func TestCanonicalJSON_DoesNotMutateReceiver(t *testing.T) {
	tr := ScanTrace{
		SourceHash: "src",
		Events: []Event{
			{Kind: EventWindowMatched, Search: "b", Offset: 1},
			{Kind: EventWindowMatched, Search: "a", Offset: 1},
		},
	}
	if _, err := tr.CanonicalJSON(); err != nil {
		t.Fatalf("canonical json: %v", err)
	}
	if tr.Events[0].Search != "b" {
		t.Fatalf("receiver events were reordered: %#v", tr.Events)
	}
}

func TestValidate_RejectsIncompleteTraces(t *testing.T) {
	cases := map[string]ScanTrace{
		"missing source": {Events: []Event{{Kind: EventWindowMatched, Search: "prime"}}},
		"missing kind":   {SourceHash: "s", Events: []Event{{Search: "prime"}}},
		"missing search": {SourceHash: "s", Events: []Event{{Kind: EventWindowMatched}}},
		"negative":       {SourceHash: "s", Events: []Event{{Kind: EventWindowMatched, Search: "prime", Offset: -1}}},
	}
	for name, tr := range cases {
		if _, err := tr.CanonicalJSON(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestHash_IgnoresInsertionOrder(t *testing.T) {
	rec1 := NewRecorder()
	rec1.Record(Event{Kind: EventWindowMatched, Search: "prime", Offset: 98, Value: 7427466391})
	rec1.Record(Event{Kind: EventWindowMatched, Search: "password", Offset: 126, Value: 5966290435})

	rec2 := NewRecorder()
	rec2.Record(Event{Kind: EventWindowMatched, Search: "password", Offset: 126, Value: 5966290435})
	rec2.Record(Event{Kind: EventWindowMatched, Search: "prime", Offset: 98, Value: 7427466391})

	h1, err := rec1.Trace("src").Hash()
	if err != nil {
		t.Fatalf("hash (1): %v", err)
	}
	h2, err := rec2.Trace("src").Hash()
	if err != nil {
		t.Fatalf("hash (2): %v", err)
	}
	if h1 != h2 {
		t.Fatalf("expected equal hash, got %q != %q", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("expected sha256 hex, got %q", h1)
	}
}

func TestRecorder_NilAndNop(t *testing.T) {
	var r *Recorder
	r.Record(Event{Kind: EventWindowMatched, Search: "prime"})
	if got := r.Snapshot(); got != nil {
		t.Fatalf("nil recorder snapshot = %#v", got)
	}
	NopSink{}.Record(Event{})

	if ComputeTraceHash(nil) != "" {
		t.Fatal("empty encoding must hash to empty string")
	}
	if HashDigits("718") == HashDigits("7182") {
		t.Fatal("distinct digit strings hashed equal")
	}
}
