package httpapi

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/pkg/errors"

	"skillupTracker/internal/auth"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleRoot greets unauthenticated callers.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Welcome to the SkillUp Tracker API!"))
}

// handleSignup registers a new account. The password is bcrypt-hashed before
// it ever reaches storage; a duplicate email fails the insert and surfaces as
// a store failure.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg, ok := validateSignup(&req); !ok {
		renderError(w, http.StatusBadRequest, msg)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.internalError(w, errors.Wrap(err, "hash password"), "Failed to create user")
		return
	}
	if _, err := s.Users.Create(r.Context(), req.Username, req.Email, hash); err != nil {
		s.internalError(w, errors.Wrap(err, "create user"), "Failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

func validateSignup(req *signupRequest) (string, bool) {
	if strings.TrimSpace(req.Username) == "" {
		return "username is required", false
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "email must be a valid email address", false
	}
	if len(req.Password) < 6 {
		return "password must be at least 6 characters", false
	}
	return "", true
}

// handleLogin verifies credentials and issues a one-hour token.
// An unknown email and a wrong password are reported separately (404 vs 400).
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	u, err := s.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		s.internalError(w, errors.Wrap(err, "get user by email"), "Failed to login")
		return
	}
	if u == nil {
		renderError(w, http.StatusNotFound, "User not found")
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		renderError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := auth.IssueToken(u.ID, s.Secret)
	if err != nil {
		s.internalError(w, errors.Wrap(err, "issue token"), "Failed to login")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful", "token": token})
}
