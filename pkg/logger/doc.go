// Package logger builds configured slog.Logger instances and provides
// attribute helpers that keep log field names consistent.
//
// The validation core never logs; only the command-line layer does, so the
// factory defaults to a human-readable text handler on stderr and can be
// switched to JSON for aggregation.
package logger
