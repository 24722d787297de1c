package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/cv-scorer/internal/types"
)

// handleAnalyze runs the full pipeline: parse, detect signals, score, explain.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Message: err.Error()}).Error())
		return
	}

	result, err := s.analyze(r.Context(), &req, s.apiKey)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleOptimize rewrites a summary or a CV's bullet points.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req types.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Message: err.Error()}).Error())
		return
	}
	if req.Type == types.OptimizeTypeSummary && req.Content == "" {
		s.errorResponse(w, http.StatusBadRequest, "content is required for summary optimization")
		return
	}
	if req.Type == types.OptimizeTypeBullets && req.CV == nil {
		s.errorResponse(w, http.StatusBadRequest, "cv is required for bullet optimization")
		return
	}

	result, err := s.optimize(r.Context(), &req, s.apiKey)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
