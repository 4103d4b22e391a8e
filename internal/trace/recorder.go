package trace

// Sink receives search decisions. Record must not fail.
type Sink interface {
	Record(event Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Record(Event) {}

// Recorder collects events in memory. It is not safe for concurrent use;
// each run owns one.
type Recorder struct {
	events []Event
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Record(event Event) {
	if r == nil {
		return
	}
	r.events = append(r.events, event)
}

// Snapshot returns a copy of all recorded events.
func (r *Recorder) Snapshot() []Event {
	if r == nil {
		return nil
	}
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Trace builds a canonical ScanTrace from the recorded events.
func (r *Recorder) Trace(sourceHash string) ScanTrace {
	tr := ScanTrace{SourceHash: sourceHash, Events: r.Snapshot()}
	tr.Canonicalize()
	return tr
}
