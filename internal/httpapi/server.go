// Package httpapi exposes the HTTP/JSON surface: open signup and login routes,
// and Bearer-token-protected skill CRUD scoped to the authenticated caller.
package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"skillupTracker/internal/config"
	"skillupTracker/repository"
)

// Server bundles dependencies and implements the HTTP API handlers.
type Server struct {
	Users  *repository.UserRepository
	Skills *repository.SkillRepository
	Secret string
	Log    *logrus.Logger
}

// Router builds the full route table with middleware applied.
// Open routes are registered before the authenticated subrouter so they are
// matched without a token.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logMiddleware)
	r.Use(s.recoverMiddleware)

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.authMiddleware)
	authed.HandleFunc("/add-skill", s.handleAddSkill).Methods(http.MethodPost)
	authed.HandleFunc("/skills", s.handleListSkills).Methods(http.MethodGet)
	// The digits-only id matcher makes a malformed id a routing 404,
	// the same class as an absent skill.
	authed.HandleFunc("/skills/{id:[0-9]+}", s.handleUpdateSkill).Methods(http.MethodPut)
	authed.HandleFunc("/skills/{id:[0-9]+}", s.handleDeleteSkill).Methods(http.MethodDelete)

	return r
}

// Start starts the HTTP server on the configured address and returns a shutdown function.
func Start(cfg *config.Config, srv *Server) (func(context.Context) error, error) {
	addr := cfg.HTTP.Address
	if addr == "" {
		addr = ":5001"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	hs := &http.Server{
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() { _ = hs.Serve(lis) }()

	return func(ctx context.Context) error {
		return hs.Shutdown(ctx)
	}, nil
}

// writeJSON renders v as the JSON response body with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// renderError replies with the standard {"error": ...} body.
func renderError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// internalError logs the underlying cause and replies with a sanitized message;
// internal detail never reaches the client.
func (s *Server) internalError(w http.ResponseWriter, err error, msg string) {
	s.Log.WithError(err).Error(msg)
	renderError(w, http.StatusInternalServerError, msg)
}
