// Package server provides the HTTP edge of the feedback service.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/GuptaDeepak23/FMSb/internal/detector"
	"github.com/GuptaDeepak23/FMSb/internal/server/api"
	"github.com/GuptaDeepak23/FMSb/internal/store"
)

// Config holds the server configuration. Store and Detector are constructed
// by the caller and remain owned by it; the server never closes them.
type Config struct {
	Store       store.Store
	Detector    detector.Detector
	Logger      *slog.Logger
	FrontendURL string
}

// Server represents the HTTP server for the feedback service.
type Server struct {
	config  Config
	logger  *slog.Logger
	mux     *http.ServeMux
	handler http.Handler
	httpSrv *http.Server
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config: config,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.setupRoutes()

	s.handler = s.withLogging(s.withRecovery(s.withCORS(s.mux)))

	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)

	if s.config.Store != nil {
		feedbackHandler := api.NewFeedbackHandler(s.config.Store, s.logger)
		s.mux.Handle("/feedback", feedbackHandler)
		s.mux.Handle("/feedbacks", feedbackHandler)
	}

	if s.config.Detector != nil {
		s.mux.Handle("/detect-gesture", api.NewDetectHandler(s.config.Detector, s.logger))
		s.mux.Handle("/ws/detect", NewDetectStreamHandler(s.config.Detector, s.logger))
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// handleRoot answers GET / with a liveness message.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Feedback Management System API running",
	})
}

// handleHealth answers GET /health by pinging the store. The endpoint
// always responds 200; reachability is reported in the body.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]string{
		"status":   "healthy",
		"database": "connected",
	}

	if s.config.Store == nil {
		response["status"] = "unhealthy"
		response["database"] = "disconnected"
		response["error"] = "no store configured"
	} else if err := s.config.Store.Ping(r.Context()); err != nil {
		response["status"] = "unhealthy"
		response["database"] = "disconnected"
		response["error"] = err.Error()
	}

	writeJSON(w, http.StatusOK, response)
}

// ListenAndServe starts the HTTP server on the given address and blocks
// until it stops.
func (s *Server) ListenAndServe(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}
