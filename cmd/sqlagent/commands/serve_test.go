// ABOUTME: Tests for the HTTP front end
// ABOUTME: Exercises the handler with a stub pipeline, no model or listener
package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ishaan-Ansari/Text2SQL-agent/internal/config"
)

func TestListenAddr(t *testing.T) {
	cfg := &config.Config{Addr: ":8080"}

	if got := listenAddr("", cfg); got != ":8080" {
		t.Errorf("listenAddr(\"\") = %q, want the configured address", got)
	}
	if got := listenAddr(":9999", cfg); got != ":9999" {
		t.Errorf("listenAddr(\":9999\") = %q, want the flag value", got)
	}
}

func TestServeMuxQuery(t *testing.T) {
	var gotQuery string
	handler := newServeMux(func(_ context.Context, query string) string {
		gotQuery = query
		return "some result"
	})

	req := httptest.NewRequest(http.MethodPost, "/api/query",
		strings.NewReader(`{"query": "show me all products"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotQuery != "show me all products" {
		t.Errorf("pipeline received %q, want the posted query", gotQuery)
	}

	var body queryResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Result != "some result" {
		t.Errorf("Result = %q, want some result", body.Result)
	}
}

func TestServeMuxBadJSON(t *testing.T) {
	handler := newServeMux(func(_ context.Context, _ string) string {
		t.Error("pipeline should not run for malformed bodies")
		return ""
	})

	req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestServeMuxHealthz(t *testing.T) {
	handler := newServeMux(func(_ context.Context, _ string) string { return "" })

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
