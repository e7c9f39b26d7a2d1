package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/db"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/editor"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/generate"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/storage"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store := storage.NewStore(database, 20)
	hub := editor.NewHub()
	session := editor.NewSession(report.DefaultDocument(), store, hub, editor.Options{})
	t.Cleanup(session.Close)

	return New(cfg, database, store, session, hub, generate.NewClient("http://localhost:0", time.Second))
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestEditorRoutesMounted(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})

	req := httptest.NewRequest("GET", "/api/report", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/report: expected 200, got %d", w.Code)
	}

	var doc report.ReportDocument
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Chapters) == 0 {
		t.Error("expected a seeded outline")
	}

	req = httptest.NewRequest("GET", "/api/preview", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /api/preview: expected 200, got %d", w.Code)
	}
}
