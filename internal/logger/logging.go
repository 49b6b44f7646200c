// Package logger builds the charmbracelet/log instances used across the
// binaries. Everything writes to stderr: in server mode stdout carries the
// wire protocol and must stay clean.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns a prefixed logger with timestamps, inheriting the level set
// on the global logger at call time.
func New(prefix string) *log.Logger {
	opts := baseOptions(prefix)
	opts.Level = log.GetLevel()
	opts.ReportTimestamp = true
	return log.NewWithOptions(os.Stderr, opts)
}

// NewWithConfig returns a logger with every knob explicit, for output that
// should not follow the global level, like the version printer.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	opts := baseOptions(prefix)
	opts.Level = level
	opts.ReportCaller = caller
	opts.ReportTimestamp = showTimestamp
	opts.Formatter = fmt
	return log.NewWithOptions(os.Stderr, opts)
}

func baseOptions(prefix string) log.Options {
	return log.Options{
		Prefix:    prefix,
		Formatter: log.TextFormatter,
	}
}
