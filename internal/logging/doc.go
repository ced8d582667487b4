// Package logging builds the slog loggers used across fft.
//
// Two output formats exist: a compact console handler for interactive
// terminals and JSON for files or pipes. NewFromConfig wires the choice to
// configuration and mirrors output into the log directory.
package logging
