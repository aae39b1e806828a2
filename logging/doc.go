// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format and reads its level from the "log.level" setting.
package logging
