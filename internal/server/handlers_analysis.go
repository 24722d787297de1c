package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/cv-scorer/internal/db"
	"github.com/jonathan/cv-scorer/internal/types"
)

// SaveAnalysisRequest is the payload for persisting a completed analysis.
type SaveAnalysisRequest struct {
	UserID uuid.UUID             `json:"user_id"`
	CVText string                `json:"cv_text"`
	Result *types.AnalysisResult `json:"result"`
}

func (s *Server) handleSaveAnalysis(w http.ResponseWriter, r *http.Request) {
	var req SaveAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if req.Result == nil || req.Result.ParsedCV == nil || req.Result.Scores == nil || req.Result.Report == nil {
		s.errorResponse(w, http.StatusBadRequest, "result with parsed_cv, scores and report is required")
		return
	}

	cvID, err := s.db.SaveAnalysis(r.Context(), req.UserID, req.CVText, req.Result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": cvID.String()})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("userId")
	userID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	profile, err := s.db.GetProfileByID(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrProfileNotFound{UserID: userID}).Error())
		return
	}

	entries, err := s.db.ListHistory(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if entries == nil {
		entries = []db.HistoryEntry{}
	}

	s.jsonResponse(w, http.StatusOK, entries)
}
