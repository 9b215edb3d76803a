package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"skillupTracker/internal/auth"
)

// Progress fields are pointers so an absent value is distinguishable from 0.
type addSkillRequest struct {
	Name     string `json:"name"`
	Progress *int   `json:"progress"`
}

type updateSkillRequest struct {
	Progress *int `json:"progress"`
}

// requirePrincipal fetches the caller injected by authMiddleware.
func (s *Server) requirePrincipal(w http.ResponseWriter, r *http.Request) (*auth.Principal, bool) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		renderError(w, http.StatusUnauthorized, "Access denied")
		return nil, false
	}
	return p, true
}

func validProgress(p *int) bool {
	return p != nil && *p >= 0 && *p <= 100
}

// handleAddSkill creates a skill owned by the caller.
func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requirePrincipal(w, r)
	if !ok {
		return
	}

	var req addSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		renderError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !validProgress(req.Progress) {
		renderError(w, http.StatusBadRequest, "progress must be between 0 and 100")
		return
	}

	sk, err := s.Skills.Create(r.Context(), p.UserID, req.Name, *req.Progress)
	if err != nil {
		s.internalError(w, errors.Wrap(err, "create skill"), "Failed to add skill")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "Skill added successfully", "skill": sk})
}

// handleListSkills returns the caller's skills, oldest first.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requirePrincipal(w, r)
	if !ok {
		return
	}

	skills, err := s.Skills.ListByUser(r.Context(), p.UserID)
	if err != nil {
		s.internalError(w, errors.Wrap(err, "list skills"), "Failed to fetch skills")
		return
	}

	writeJSON(w, http.StatusOK, skills)
}

// handleUpdateSkill sets the progress of one of the caller's skills.
// A skill that does not exist, or belongs to someone else, is a 404 either way.
func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requirePrincipal(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		renderError(w, http.StatusNotFound, "Skill not found")
		return
	}

	var req updateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !validProgress(req.Progress) {
		renderError(w, http.StatusBadRequest, "progress must be between 0 and 100")
		return
	}

	sk, err := s.Skills.UpdateProgress(r.Context(), id, p.UserID, *req.Progress)
	if err != nil {
		s.internalError(w, errors.Wrap(err, "update skill"), "Failed to update skill")
		return
	}
	if sk == nil {
		renderError(w, http.StatusNotFound, "Skill not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Skill updated successfully", "skill": sk})
}

// handleDeleteSkill removes one of the caller's skills.
func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requirePrincipal(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		renderError(w, http.StatusNotFound, "Skill not found")
		return
	}

	deleted, err := s.Skills.Delete(r.Context(), id, p.UserID)
	if err != nil {
		s.internalError(w, errors.Wrap(err, "delete skill"), "Failed to delete skill")
		return
	}
	if !deleted {
		renderError(w, http.StatusNotFound, "Skill not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Skill deleted successfully"})
}
