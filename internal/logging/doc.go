// Package logging assembles structured slog loggers and formatting helpers used
// across the carousel pipeline.
//
// It owns the console and JSON handlers, fans records out to the log file, and
// exposes context-aware helpers so stage code can tag log lines with the run
// ID, stage, video group and image index. A no-op logger is provided for tests
// and wiring code that cannot fail.
package logging
