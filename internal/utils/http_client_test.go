package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:7788", 3*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client with embedded *resty.Client")
	}
	if client.BaseURL != "http://127.0.0.1:7788" {
		t.Errorf("expected base url to be set, got %q", client.BaseURL)
	}
	if got := client.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("expected JSON content type, got %q", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", time.Second)
	client2 := NewHTTPClient("http://b", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected independent *resty.Client instances")
	}
}

func TestNewHTTPClient_ForwardsTraceID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(TraceIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-123")

	if _, err := client.R().SetContext(ctx).Get("/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "trace-123" {
		t.Errorf("expected trace id header %q, got %q", "trace-123", got)
	}
}

func TestNewHTTPClient_NoTraceID(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[TraceIDHeader]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	if _, err := client.R().SetContext(context.Background()).Get("/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if present {
		t.Error("expected no trace id header without a trace id in context")
	}
}
