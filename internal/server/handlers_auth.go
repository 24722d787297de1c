package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/cv-scorer/internal/types"
)

// handleCheckEmail returns the profile registered under an email, or null.
func (s *Server) handleCheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if email == "" {
		s.errorResponse(w, http.StatusBadRequest, "Email is required")
		return
	}

	profile, err := s.db.GetProfileByEmail(r.Context(), email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// A missing profile is not an error here; the client uses null to decide
	// whether to register.
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleMockAuth upserts a profile by email and returns the stored row.
// There is no credential check; identity is taken at face value.
func (s *Server) handleMockAuth(w http.ResponseWriter, r *http.Request) {
	var req types.UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Message: err.Error()}).Error())
		return
	}

	profile, err := s.db.UpsertProfile(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}
