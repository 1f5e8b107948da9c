// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestCallerCtxKey(t *testing.T) {
	if CallerCtxKey.String() != "caller" {
		t.Errorf("expected 'caller', got '%s'", CallerCtxKey.String())
	}
}

func TestGetCallerFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "vaultctl")

	caller, ok := GetCallerFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if caller != "vaultctl" {
		t.Errorf("expected caller=vaultctl, got %q", caller)
	}
}

func TestGetCallerFromContext_Missing(t *testing.T) {
	caller, ok := GetCallerFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if caller != "" {
		t.Errorf("expected empty caller, got %q", caller)
	}
}

func TestGetCallerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, int64(42))

	if _, ok := GetCallerFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetCallerFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "")

	if _, ok := GetCallerFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty caller, got true")
	}
}

func TestGetCallerFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "vaultctl")

	if _, ok := GetCallerFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "0190c0de")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID != "0190c0de" {
		t.Errorf("expected trace id 0190c0de, got %q (ok=%v)", traceID, ok)
	}

	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false without a trace id")
	}
}
