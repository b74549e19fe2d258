package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRequestIDGenerated(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatal("expected a generated request id in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("header/context mismatch: %q vs %q", got, seen)
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != "abc-123" {
		t.Fatalf("expected caller-supplied id, got %q", seen)
	}
}

func TestRecoverWritesStructuredError(t *testing.T) {
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("scoring exploded")
	}), RequestID, Recover(zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/score/leads", strings.NewReader("{}"))
	req.Header.Set("X-Request-ID", "trace-me")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var apiErr APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &apiErr); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if apiErr.Error.Code != "internal_error" {
		t.Errorf("expected internal_error code, got %q", apiErr.Error.Code)
	}
	if apiErr.Error.Trace == "" {
		t.Error("expected a stack trace in the payload")
	}
	if apiErr.Error.RequestID != "trace-me" {
		t.Errorf("expected request id in payload, got %q", apiErr.Error.RequestID)
	}
}

func TestMethodMux(t *testing.T) {
	mux := NewMux(Deps{GenStatus: newGenStatus()})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/score/rules", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	mux := NewMux(Deps{GenStatus: newGenStatus()})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok:true, got %v", resp)
	}
}
