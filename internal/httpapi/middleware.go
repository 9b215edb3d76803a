package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"skillupTracker/internal/auth"
)

// authMiddleware verifies the Bearer token and injects the caller identity into
// the request context. Missing credentials and bad credentials are reported with
// distinct codes: 401 says "nothing was supplied", 403 says "what was supplied
// is useless, re-login".
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := auth.ParseFromRequest(r, s.Secret)
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				renderError(w, http.StatusUnauthorized, "Access denied")
			} else {
				renderError(w, http.StatusForbidden, "Invalid token")
			}
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
	})
}

// recoverMiddleware converts panics into a generic 500 so one bad request
// cannot take down the process.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.Log.WithFields(logrus.Fields{
					"panic":  rec,
					"method": r.Method,
					"path":   r.URL.Path,
				}).Error("handler panic")
				renderError(w, http.StatusInternalServerError, "Something went wrong!")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by the handler chain.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// logMiddleware emits one structured line per request.
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.Log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}
