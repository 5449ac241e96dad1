// Package logging provides structured logging for Roomline Core.
//
// It wraps log/slog with configuration-driven level filtering, JSON or
// text output, and default service/version attributes. Components derive
// their own loggers with With("component", ...).
package logging
