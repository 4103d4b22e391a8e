package cli

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"billboard/internal/digits"
	"billboard/internal/logging"
	"billboard/internal/search"
	"billboard/internal/trace"
)

type CLIResult struct {
	ExitCode int
	Prime    *search.Result
	Password *search.Result
	// TraceHash identifies the decisions both searches made.
	TraceHash string
}

// Execute runs both searches over the embedded expansion of e.
func Execute(inv Invocation, stdout, stderr io.Writer) (CLIResult, error) {
	return ExecuteSource(inv, digits.E, stdout, stderr)
}

// ExecuteSource runs both searches over the decimal literal raw.
//
// Responsibilities:
//   - Print each answer line to stdout as soon as it is found.
//   - Stop after a failed prime search; the password search is not attempted.
//   - Print a one-line diagnostic to stderr for any failure.
//   - Translate the outcome to a semantic exit code.
func ExecuteSource(inv Invocation, raw string, stdout, stderr io.Writer) (res CLIResult, execErr error) {
	res.ExitCode = ExitInternalError

	logger, err := logging.New(stderr, inv.LogLevel, inv.LogFormat)
	if err != nil {
		res.ExitCode = ExitInvalidInvocation
		return res, &InvocationError{ExitCode: ExitInvalidInvocation, Message: err.Error()}
	}

	defer func() {
		if execErr != nil {
			fmt.Fprintln(stderr, diagnostic(execErr))
			res.ExitCode = ExitCode(execErr)
		}
	}()

	seq, err := digits.Parse(raw)
	if err != nil {
		return res, err
	}
	level.Debug(logger).Log("msg", "digits parsed", "len", seq.Len())

	reg := prometheus.NewRegistry()
	rec := trace.NewRecorder()
	opts := []search.Option{
		search.WithLogger(logger),
		search.WithMetrics(search.NewMetrics(reg)),
		search.WithRecorder(rec),
	}
	defer logMetrics(logger, reg)

	p, err := search.FindPrime(seq, opts...)
	if err != nil {
		return res, err
	}
	res.Prime = &p
	if _, err := fmt.Fprintf(stdout, "website is www.%010d.com\n", p.Window.Value); err != nil {
		return res, errors.Wrap(err, "write prime result")
	}

	pw, err := search.FindPassword(seq, search.DefaultPasswordCriteria(), opts...)
	if err != nil {
		return res, err
	}
	res.Password = &pw
	if _, err := fmt.Fprintf(stdout, "in linux.com, '%010d' could be the password\n", pw.Window.Value); err != nil {
		return res, errors.Wrap(err, "write password result")
	}

	res.TraceHash, err = rec.Trace(trace.HashDigits(seq.String())).Hash()
	if err != nil {
		return res, errors.Wrap(err, "hash scan trace")
	}
	level.Debug(logger).Log("msg", "run finished", "trace_hash", res.TraceHash)

	res.ExitCode = ExitSuccess
	return res, nil
}

func diagnostic(err error) string {
	var nf *search.NotFoundError
	if errors.As(err, &nf) {
		switch nf.Search {
		case search.NamePrime:
			return fmt.Sprintf("did not find a prime window in the digits of e (%d windows scanned)", nf.Scanned)
		case search.NamePassword:
			return fmt.Sprintf("did not find the password window in the digits of e (%d windows scanned)", nf.Scanned)
		}
	}
	return err.Error()
}

// logMetrics writes every gathered counter at debug level.
func logMetrics(logger log.Logger, g prometheus.Gatherer) {
	mfs, err := g.Gather()
	if err != nil {
		level.Warn(logger).Log("msg", "failed to gather metrics", "err", err)
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			kv := []any{"msg", "metric", "name", mf.GetName(), "value", m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				kv = append(kv, lp.GetName(), lp.GetValue())
			}
			level.Debug(logger).Log(kv...)
		}
	}
}
