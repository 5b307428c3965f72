// Package xlsxbook reads the workbook-level tables of an xlsx package: the
// sheet directory, the shared strings, the date-formatted cell styles and the
// date system in force.
package xlsxbook

import (
	"io"
	"log/slog"
)

// Options configures Open.
type Options struct {
	// Logger receives debug records for every part that was missing or
	// malformed and therefore read as empty. Nil discards them.
	Logger *slog.Logger
	// Concurrent builds the shared-string table and the style table in
	// parallel. The result is the same either way.
	Concurrent bool
}

// DefaultOptions returns default open options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
