// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the
// vault daemon and its client, and with helpers to recover request-scoped
// loggers from a context.
//
// Secrets (master passwords, keys, decrypted credentials) are never passed
// to a logger anywhere in the code base; log the action and its outcome.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// ClientLogFileName is the file vaultctl writes its log to, next to the
// executable, so terminal UI output is not interleaved with log lines.
const ClientLogFileName = "vaultctl.log"

// NewLogger builds the daemon logger: JSON lines on stdout with "role",
// timestamp, and the calling function under "func".
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger builds the vaultctl logger. Output goes to
// [ClientLogFileName] in the executable's directory, falling back to
// stderr if the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stderr

	if execPath, err := os.Executable(); err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), ClientLogFileName)
		if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
			out = f
		}
	}

	return New(out, role)
}

// New builds a logger writing JSON to w.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// SetLevel parses level ("debug", "info", ...) and applies it globally.
// Unknown or empty values leave the level unchanged.
func SetLevel(level string) {
	if level == "" {
		return
	}
	if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
		zerolog.SetGlobalLevel(parsed)
	}
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a logger inheriting all fields of l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to r's context by the trace-id
// middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. When none is attached,
// zerolog's default context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// ForContext returns the request-scoped logger attached to ctx, or l when
// ctx carries none.
func (l *Logger) ForContext(ctx context.Context) *Logger {
	if scoped := zerolog.Ctx(ctx); scoped.GetLevel() != zerolog.Disabled {
		return &Logger{*scoped}
	}
	return l
}
