// Package cli implements the lineq command-line interface.
//
// The commands expose the pkg/line API: evaluating a line at x or y,
// building perpendiculars, comparing two lines, and computing the line
// through two points. The CLI is built using cobra, styled with lipgloss,
// and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - show, y, x, perp: operate on one line given with -m/-b
//   - sample: tabulate y over a range of x
//   - explore: interactive evaluator (bubbletea)
//   - equal, parallel: compare two "m,b" lines
//   - through: slope and line through two points
//   - config: inspect the TOML config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.Execute(ctx, c.RootCommand()); err != nil {
//	    os.Exit(1) // already logged and printed
//	}
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
