// Package search runs the two billboard searches over the digits of e: the
// first prime window, and the first window with a target digit sum that is
// not a known decoy.
//
// Each search builds its own scan.Scanner, so searches never share a cursor.
package search

import (
	"slices"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"billboard/internal/digits"
	"billboard/internal/prime"
	"billboard/internal/scan"
	"billboard/internal/trace"
)

const (
	NamePrime    = "prime"
	NamePassword = "password"
)

const reasonKnownDecoy = "KnownDecoy"

// Result is the window a search matched.
type Result struct {
	Search string
	// Window.Sum is only filled in by FindPassword.
	Window scan.Window
	// Scanned counts windows examined, including the match.
	Scanned int
}

// PasswordCriteria selects the password window.
type PasswordCriteria struct {
	DigitSum uint32
	Exclude  []uint64
}

// DefaultPasswordCriteria returns the puzzle's criteria: digit sum 49 and the
// four windows that are already known answers to earlier steps.
func DefaultPasswordCriteria() PasswordCriteria {
	return PasswordCriteria{
		DigitSum: 49,
		Exclude:  []uint64{7182818284, 8182845904, 8747135266, 7427466391},
	}
}

type options struct {
	logger  log.Logger
	metrics *Metrics
	sink    trace.Sink
}

// Option configures a search.
type Option func(*options)

func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithRecorder sends search decisions to s.
func WithRecorder(s trace.Sink) Option {
	return func(o *options) { o.sink = s }
}

func buildOptions(opts []Option) options {
	o := options{logger: log.NewNopLogger(), sink: trace.NopSink{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNopLogger()
	}
	if o.sink == nil {
		o.sink = trace.NopSink{}
	}
	return o
}

// FindPrime returns the first window of seq whose value is prime.
// A window whose value is 0 is tested like any other; only running out of
// full windows ends the scan, with a *NotFoundError.
func FindPrime(seq digits.Sequence, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	logger := log.With(o.logger, "search", NamePrime)
	sc := scan.New(seq)
	level.Debug(logger).Log("msg", "search started", "windows", sc.Remaining())

	var scanned int
	for {
		offset := sc.Offset()
		v, err := sc.NextWindowValue()
		if errors.Is(err, scan.ErrOutOfRange) {
			return Result{}, exhausted(o, logger, NamePrime, sc.Offset(), scanned)
		}
		if err != nil {
			return Result{}, errors.Wrap(err, "prime search")
		}
		scanned++
		o.metrics.scanned(NamePrime)

		if prime.IsPrime(v) {
			return matched(o, logger, NamePrime, scan.Window{Offset: offset, Value: v}, scanned), nil
		}
	}
}

// FindPassword returns the first window of seq whose digit sum equals
// c.DigitSum and whose value is not in c.Exclude.
func FindPassword(seq digits.Sequence, c PasswordCriteria, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	logger := log.With(o.logger, "search", NamePassword)
	sc := scan.New(seq)
	level.Debug(logger).Log("msg", "search started", "windows", sc.Remaining(), "digit_sum", c.DigitSum, "excluded", len(c.Exclude))

	var scanned int
	for w := range sc.Windows() {
		scanned++
		o.metrics.scanned(NamePassword)

		if w.Sum != c.DigitSum {
			continue
		}
		if slices.Contains(c.Exclude, w.Value) {
			level.Debug(logger).Log("msg", "candidate excluded", "offset", w.Offset, "value", w.Value)
			o.metrics.rejected(NamePassword, reasonKnownDecoy)
			o.sink.Record(trace.Event{
				Kind:   trace.EventCandidateExcluded,
				Search: NamePassword,
				Offset: w.Offset,
				Value:  w.Value,
				Reason: reasonKnownDecoy,
			})
			continue
		}
		return matched(o, logger, NamePassword, w, scanned), nil
	}
	return Result{}, exhausted(o, logger, NamePassword, sc.Offset(), scanned)
}

func matched(o options, logger log.Logger, name string, w scan.Window, scanned int) Result {
	level.Info(logger).Log("msg", "window matched", "offset", w.Offset, "value", w.Value, "windows", scanned)
	o.metrics.outcome(name, "matched")
	o.sink.Record(trace.Event{Kind: trace.EventWindowMatched, Search: name, Offset: w.Offset, Value: w.Value})
	return Result{Search: name, Window: w, Scanned: scanned}
}

func exhausted(o options, logger log.Logger, name string, offset, scanned int) error {
	level.Error(logger).Log("msg", "sequence exhausted without a match", "offset", offset, "windows", scanned)
	o.metrics.outcome(name, "not_found")
	o.sink.Record(trace.Event{Kind: trace.EventSearchExhausted, Search: name, Offset: offset})
	return &NotFoundError{Search: name, Scanned: scanned}
}
