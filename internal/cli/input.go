package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"billboard/internal/digits"
	"billboard/internal/logging"
	"billboard/internal/search"
)

const (
	ExitSuccess           = 0
	ExitNotFound          = 1
	ExitInvalidInvocation = 2
	ExitDataError         = 3
	ExitInternalError     = 4
)

// Invocation is the canonical description of a run. It only shapes
// diagnostics; the searches themselves take no input.
type Invocation struct {
	LogLevel  string
	LogFormat string
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses CLI flags into a canonical Invocation.
// Environment variables are never consulted.
func ParseInvocation(args []string) (Invocation, error) {
	fs := pflag.NewFlagSet("billboard", pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed
	fs.SortFlags = false

	var inv Invocation
	fs.StringVar(&inv.LogLevel, "log.level", "warn", "Diagnostic log level: "+strings.Join(logging.Levels, "|"))
	fs.StringVar(&inv.LogFormat, "log.format", logging.FormatLogfmt, "Diagnostic log format: "+strings.Join(logging.Formats, "|"))

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	inv.LogLevel = strings.ToLower(strings.TrimSpace(inv.LogLevel))
	inv.LogFormat = strings.ToLower(strings.TrimSpace(inv.LogFormat))
	if !slices.Contains(logging.Levels, inv.LogLevel) {
		return Invocation{}, invalidInvocationf("invalid --log.level %q (expected %s)", inv.LogLevel, strings.Join(logging.Levels, "|"))
	}
	if !slices.Contains(logging.Formats, inv.LogFormat) {
		return Invocation{}, invalidInvocationf("invalid --log.format %q (expected %s)", inv.LogFormat, strings.Join(logging.Formats, "|"))
	}
	return inv, nil
}

// ExitCode maps an error from ParseInvocation or Execute to its semantic
// exit code. Unknown errors map to ExitInternalError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	var pe *digits.ParseError
	switch {
	case errors.Is(err, search.ErrNotFound):
		return ExitNotFound
	case errors.As(err, &pe):
		return ExitDataError
	}
	return ExitInternalError
}
