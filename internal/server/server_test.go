package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GuptaDeepak23/FMSb/internal/detector"
	"github.com/GuptaDeepak23/FMSb/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer builds a Server on a temporary SQLite store and a mock
// detector.
func newTestServer(t *testing.T) (*Server, store.Store, *detector.MockDetector) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})

	mock := detector.NewMockDetector()

	srv := New(Config{
		Store:       s,
		Detector:    mock,
		Logger:      testLogger(),
		FrontendURL: "*",
	})

	return srv, s, mock
}

func TestRoot(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["message"] == "" {
		t.Error("expected a liveness message")
	}
}

func TestRootUnknownPath(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHealthHealthy(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "healthy" || response["database"] != "connected" {
		t.Errorf("unexpected health response: %v", response)
	}
}

// brokenStore simulates an unreachable database.
type brokenStore struct{}

func (brokenStore) InsertFeedback(context.Context, store.NewFeedback) (int64, error) {
	return 0, errors.New("connection refused")
}
func (brokenStore) ListFeedbacks(context.Context) ([]store.Feedback, error) {
	return nil, errors.New("connection refused")
}
func (brokenStore) Ping(context.Context) error { return errors.New("connection refused") }
func (brokenStore) Close() error               { return nil }

func TestHealthUnhealthy(t *testing.T) {
	srv := New(Config{
		Store:  brokenStore{},
		Logger: testLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	// Health reports unreachability in the body, never as an HTTP failure.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "unhealthy" || response["database"] != "disconnected" {
		t.Errorf("unexpected health response: %v", response)
	}
	if response["error"] == "" {
		t.Error("expected an error description")
	}
}

func TestStoreFailureIs500(t *testing.T) {
	srv := New(Config{
		Store:  brokenStore{},
		Logger: testLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/feedbacks", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("expected a descriptive message, got %q", rec.Body.String())
	}
}

func TestFeedbackRoundTrip(t *testing.T) {
	srv, _, _ := newTestServer(t)

	// Submit through the full middleware chain.
	req := httptest.NewRequest(http.MethodPost, "/feedback",
		strings.NewReader(`{"type":"positive","message":"nice"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("submit: expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	// And read it back.
	req = httptest.NewRequest(http.MethodGet, "/feedbacks", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var feedbacks []struct {
		ID      int64   `json:"id"`
		Type    string  `json:"type"`
		Message *string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&feedbacks); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(feedbacks) != 1 {
		t.Fatalf("expected 1 feedback, got %d", len(feedbacks))
	}
	if feedbacks[0].ID == 0 {
		t.Error("expected a store-assigned id")
	}
	if feedbacks[0].Type != "positive" || feedbacks[0].Message == nil || *feedbacks[0].Message != "nice" {
		t.Errorf("unexpected record: %+v", feedbacks[0])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}
}

func TestCORSPreflight(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/feedback", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected Access-Control-Allow-Methods on preflight")
	}
}

func TestCORSConfiguredOrigin(t *testing.T) {
	srv := New(Config{
		Logger:      testLogger(),
		FrontendURL: "https://feedback.example.com",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://feedback.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q, want configured origin", got)
	}
}

// panicStore blows up on listing, to exercise the recovery middleware.
type panicStore struct{ brokenStore }

func (panicStore) ListFeedbacks(context.Context) ([]store.Feedback, error) {
	panic("cursor state corrupted")
}

func TestRecoveryMiddleware(t *testing.T) {
	srv := New(Config{
		Store:  panicStore{},
		Logger: testLogger(),
	})

	req := httptest.NewRequest(http.MethodGet, "/feedbacks", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cursor state corrupted") {
		t.Errorf("expected the fault text in the response, got %q", rec.Body.String())
	}
}
