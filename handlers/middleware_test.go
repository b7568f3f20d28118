package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLogger_GeneratesAndEchoesID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	var buf bytes.Buffer
	h := RequestLogger(slog.New(slog.NewJSONHandler(&buf, nil)), next)

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/users", nil))

	if seen == "" || resp.Header().Get("X-Request-ID") != seen {
		t.Fatalf("request id not propagated: ctx=%q header=%q", seen, resp.Header().Get("X-Request-ID"))
	}
	if !strings.Contains(buf.String(), `"status":418`) {
		t.Fatalf("access log missing status: %s", buf.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp = httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	if seen != "abc-123" {
		t.Fatalf("expected client id to be reused, got %q", seen)
	}
}

func TestRecoverWrapper(t *testing.T) {
	h := RecoverWrapper(discardLogger(), func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	resp := httptest.NewRecorder()
	h(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "boom") {
		t.Fatalf("panic value leaked: %s", resp.Body.String())
	}
}
