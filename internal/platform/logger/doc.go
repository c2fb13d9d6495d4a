// Package logger provides structured logging for the application.
//
// It builds on log/slog: JSON output for machines, and a charmbracelet/log
// handler for the human-readable "text" format. Request-scoped loggers travel
// through context.Context.
package logger
