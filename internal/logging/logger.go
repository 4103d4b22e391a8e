// Package logging builds the go-kit logger used for diagnostics on stderr.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// Levels lists the accepted --log.level values, most verbose first.
var Levels = []string{"debug", "info", "warn", "error"}

// Formats lists the accepted --log.format values.
var Formats = []string{FormatLogfmt, FormatJSON}

// New returns a leveled logger writing to w. Unknown level or format names
// are an error.
func New(w io.Writer, lvl, format string) (log.Logger, error) {
	opt, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}

	sw := log.NewSyncWriter(w)
	var l log.Logger
	switch strings.ToLower(format) {
	case FormatLogfmt, "":
		l = log.NewLogfmtLogger(sw)
	case FormatJSON:
		l = log.NewJSONLogger(sw)
	default:
		return nil, fmt.Errorf("unrecognized log format %q (expected %s)", format, strings.Join(Formats, "|"))
	}

	l = level.NewFilter(l, opt)
	return log.With(l, "ts", log.DefaultTimestampUTC), nil
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn", "":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("unrecognized log level %q (expected %s)", lvl, strings.Join(Levels, "|"))
	}
}
