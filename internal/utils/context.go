// Package utils provides general-purpose helper utilities used across the
// vault daemon and its clients: typed context keys, JSON response writing,
// the resty client wrapper, caller JWT tokens and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key under which the authenticated caller name is
// stored by the auth middleware.
//
//	ctx := context.WithValue(ctx, utils.CallerCtxKey, "vaultctl")
var CallerCtxKey = contextKey("caller")

// TraceIDCtxKey is the key under which the request trace id is stored.
var TraceIDCtxKey = contextKey("traceID")

// GetCallerFromContext returns the caller name stored under CallerCtxKey.
// ok is false when the value is missing or is not a non-empty string.
func GetCallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(string)
	return caller, ok && caller != ""
}

// GetTraceIDFromContext returns the trace id stored under TraceIDCtxKey.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
