// Package server exposes the translation service over HTTP with a
// small JSON API: POST /translate and GET /health, plus aliases kept
// for LangServe-style clients.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/smallnest/lingo/internal/domain"
	"github.com/smallnest/lingo/internal/log"
	"github.com/smallnest/lingo/internal/translator"
)

// Server wires the translation service to an http.Server.
type Server struct {
	service *translator.Service
	logger  log.Logger
	httpSrv *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server listening on addr.
func New(addr string, service *translator.Service, opts ...Option) *Server {
	s := &Server{
		service: service,
		logger:  &log.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 3 * time.Second,
	}
	return s
}

// Handler assembles the route table wrapped in the middleware stack.
// Exposed separately so tests can drive the server without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/translate", s.handleTranslate)
	// LangServe-style alias for clients that speak /chain/invoke.
	mux.HandleFunc("/chain/invoke", s.handleTranslate)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleRoot)

	return corsMiddleware(requestIDMiddleware(s.loggingMiddleware(mux)))
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpSrv.Addr
}

// Start begins serving and blocks until the listener stops. A clean
// Shutdown is not reported as an error.
func (s *Server) Start() error {
	s.logger.Info("lingo translation server listening on %s", s.httpSrv.Addr)

	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting new requests and drains in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down lingo translation server")
	return s.httpSrv.Shutdown(ctx)
}

// handleTranslate handles POST /translate.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.TranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := s.service.Process(r.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeJSONError(w, verr.Error(), http.StatusBadRequest)
			return
		}

		var terr *translator.TranslationError
		if errors.As(err, &terr) {
			writeJSONError(w, terr.Error(), http.StatusBadGateway)
			return
		}

		writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, s.service.HealthCheck())
}

// handleRoot answers GET / as a health alias and 404s everything else.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSONError(w, "Not found", http.StatusNotFound)
		return
	}
	s.handleHealth(w, r)
}

// writeJSON sends a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeJSONError sends a JSON error response.
func writeJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": message,
	})
}
