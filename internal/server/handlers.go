package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-pipeline/internal/extraction"
	"github.com/jonathan/resume-pipeline/internal/pipeline"
	"github.com/jonathan/resume-pipeline/internal/rendering"
	"github.com/jonathan/resume-pipeline/internal/types"
)

// GenerateRequest represents the request body for POST /v1/resumes
type GenerateRequest struct {
	JobText  string                 `json:"job_text" validate:"required_without=JobHTML"`
	JobHTML  string                 `json:"job_html" validate:"required_without=JobText"`
	Profile  *types.ProfileSnapshot `json:"profile" validate:"required"`
	Bio      string                 `json:"bio,omitempty"`
	Name     string                 `json:"name,omitempty"`
	Email    string                 `json:"email,omitempty" validate:"omitempty,email"`
	Location string                 `json:"location,omitempty"`
}

// PrepRequest represents the request body for POST /v1/interview-prep
type PrepRequest struct {
	JobText string `json:"job_text" validate:"required_without=JobHTML"`
	JobHTML string `json:"job_html" validate:"required_without=JobText"`
}

// ErrorResponse is the JSON body for all error responses
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// handleGenerate runs the full pipeline and streams the document back
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error(), "")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error(), "")
		return
	}

	result, err := s.pipe.Run(r.Context(), pipeline.Request{
		JobText: req.JobText,
		JobHTML: req.JobHTML,
		Profile: req.Profile,
		Bio:     req.Bio,
		Identity: rendering.Identity{
			Name:     req.Name,
			Email:    req.Email,
			Location: req.Location,
		},
	})
	if err != nil {
		s.pipelineErrorResponse(w, err)
		return
	}

	doc := result.Document
	w.Header().Set("Content-Type", string(doc.MIMEType))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename()))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Bytes)))
	w.Header().Set("X-Render-Mode", string(doc.RenderMode))
	w.Header().Set("X-Synthesis-Mode", string(result.Content.SynthesisMode))
	if result.ResumeID != "" {
		w.Header().Set("X-Resume-ID", result.ResumeID)
	}
	if _, err := w.Write(doc.Bytes); err != nil {
		s.log.Warn("failed to write response body", zap.Error(err))
	}
}

// handlePrep extracts requirements and returns an interview prep guide
func (s *Server) handlePrep(w http.ResponseWriter, r *http.Request) {
	var req PrepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error(), "")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error(), "")
		return
	}

	result, err := s.pipe.Prep(r.Context(), pipeline.PrepRequest{
		JobText: req.JobText,
		JobHTML: req.JobHTML,
	})
	if err != nil {
		s.pipelineErrorResponse(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result.Prep)
}

// handleListResumes returns recent resume records when persistence is on
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "persistence is not configured", "")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer", "")
			return
		}
		limit = n
	}

	records, err := s.store.ListResumes(r.Context(), limit)
	if err != nil {
		s.log.Error("failed to list resumes", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes", "")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"resumes": records})
}

// handleGetResume returns one resume record by ID
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "id must be a valid UUID", "")
		return
	}

	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "persistence is not configured", "")
		return
	}

	rec, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.log.Error("failed to get resume", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to get resume", "")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found", "")
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pipelineErrorResponse maps pipeline failures to HTTP statuses. Input
// problems report the offending field; security failures stay generic so the
// response reveals nothing about server paths.
func (s *Server) pipelineErrorResponse(w http.ResponseWriter, err error) {
	var validationErr *extraction.ValidationError
	if errors.As(err, &validationErr) {
		s.errorResponse(w, http.StatusBadRequest, validationErr.Reason, validationErr.Field)
		return
	}

	var securityErr *rendering.SecurityError
	if errors.As(err, &securityErr) {
		s.log.Error("render security failure", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "could not produce the document safely", "")
		return
	}

	s.log.Error("pipeline failed", zap.Error(err))
	s.errorResponse(w, http.StatusInternalServerError, "resume generation failed", "")
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message, field string) {
	s.writeJSON(w, status, ErrorResponse{Error: message, Field: field})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn("failed to encode response", zap.Error(err))
	}
}
