package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	Job    *types.JobRequirements `json:"job"`
	Result *types.AnalysisResult  `json:"result"`
}

// CompareRequest represents the request body for /analyze/compare
type CompareRequest struct {
	ResumeText string `json:"resume_text"`
}

// CompareResponse represents the response for /analyze/compare
type CompareResponse struct {
	Comparisons []types.RoleComparison `json:"comparisons"`
}

// FeedbackResponse represents the response for /feedback
type FeedbackResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// handleAnalyze analyzes resume text against a catalog role, a free-text
// job description, or a job posting URL.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.analyze(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnalyzeUpload accepts a multipart resume file (PDF, DOCX, or plain
// text) plus the job input as form fields, extracts the text, and runs the
// same analysis as /analyze.
func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ingestion.MaxFileSize)
	if err := r.ParseMultipartForm(ingestion.MaxFileSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume file: "+err.Error())
		return
	}

	resumeText, err := ingestion.ExtractText(data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	req := types.AnalyzeRequest{
		ResumeText:     resumeText,
		Role:           r.FormValue("role"),
		JobDescription: r.FormValue("job_description"),
		JobURL:         r.FormValue("job_url"),
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.analyze(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCompare analyzes resume text against every catalog role and returns
// the comparisons ranked by overall score.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ResumeText == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	comparisons, err := s.analyzer.CompareRoles(r.Context(), req.ResumeText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, CompareResponse{Comparisons: comparisons})
}

// handleListRoles returns the role catalog
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.analyzer.Catalog().Roles())
}

// handleGetRole returns the full requirements for a single catalog role
func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	job, err := s.analyzer.Catalog().Role(key)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleCreateFeedback stores a user feedback submission
func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Feedback storage is not configured")
		return
	}

	var req types.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.db.SaveFeedback(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save feedback: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, FeedbackResponse{
		ID:     id.String(),
		Status: "saved",
	})
}

// handleFeedbackSummary returns aggregate feedback statistics
func (s *Server) handleFeedbackSummary(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Feedback storage is not configured")
		return
	}

	summary, err := s.db.FeedbackSummary(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load feedback summary: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}

// analyze dispatches a validated request to the matching job input.
func (s *Server) analyze(ctx context.Context, req *types.AnalyzeRequest) (*AnalyzeResponse, error) {
	switch {
	case req.Role != "":
		result, job, err := s.analyzer.AnalyzeAgainstRole(req.ResumeText, req.Role)
		if err != nil {
			return nil, err
		}
		return &AnalyzeResponse{Job: job, Result: result}, nil

	case req.JobURL != "":
		description, err := fetch.JobDescription(ctx, req.JobURL, s.fetchOpts)
		if err != nil {
			return nil, err
		}
		result, job, err := s.analyzer.AnalyzeAgainstDescription(req.ResumeText, description)
		if err != nil {
			return nil, err
		}
		return &AnalyzeResponse{Job: job, Result: result}, nil

	default:
		result, job, err := s.analyzer.AnalyzeAgainstDescription(req.ResumeText, req.JobDescription)
		if err != nil {
			return nil, err
		}
		return &AnalyzeResponse{Job: job, Result: result}, nil
	}
}
