package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_TaggedResponse(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}{"error", "Unknown action"}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != `{"status":"error","message":"Unknown action"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Action string `json:"action"`
	}

	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantEmpty bool
		want      string
	}{
		{name: "valid", body: `{"action":"hasKey"}`, want: "hasKey"},
		{name: "unknown fields ignored", body: `{"action":"lock","extra":1}`, want: "lock"},
		{name: "empty", body: "", wantErr: true, wantEmpty: true},
		{name: "malformed", body: `{"action":`, wantErr: true},
		{name: "trailing data", body: `{"action":"lock"} {"action":"lock"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var p payload
			err := DecodeJSON(r, &p)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantEmpty && !errors.Is(err, ErrEmptyBody) {
					t.Errorf("expected ErrEmptyBody, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Action != tt.want {
				t.Errorf("expected action %q, got %q", tt.want, p.Action)
			}
		})
	}
}

func TestDecodeJSON_BodyLimit(t *testing.T) {
	big := `{"action":"` + strings.Repeat("a", MaxRequestBodySize) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))

	var p map[string]string
	if err := DecodeJSON(r, &p); err == nil {
		t.Fatal("expected error for oversized body")
	}
}
