package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/user/section-detector/internal/delivery/http/request"
	"github.com/user/section-detector/internal/delivery/http/response"
	"github.com/user/section-detector/internal/detector"
	"github.com/user/section-detector/internal/repository"
	"github.com/user/section-detector/internal/usecase"
)

type Handler struct {
	analyzer usecase.Analyzer
}

func NewHandler(analyzer usecase.Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (h *Handler) HandleDetectSections(w http.ResponseWriter, r *http.Request) {
	var req request.DetectSectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := url.ParseRequestURI(req.URL); err != nil {
		h.writeJSONError(w, "Invalid URL format", http.StatusBadRequest)
		return
	}

	result, err := h.analyzer.AnalyzeURL(r.Context(), req.URL, req.ForceRefresh)
	if err != nil {
		h.writeAnalysisError(w, req.URL, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response.FromResult(result))
}

func (h *Handler) HandleAnalyzeHTML(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeHTMLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.HTML == "" {
		h.writeJSONError(w, "HTML content is required", http.StatusBadRequest)
		return
	}

	result, err := h.analyzer.AnalyzeHTML(r.Context(), req.HTML)
	if err != nil {
		h.writeAnalysisError(w, "inline html", err)
		return
	}

	h.writeJSON(w, http.StatusOK, response.FromResult(result))
}

func (h *Handler) HandleGetSections(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		h.writeJSONError(w, "URL query parameter is required", http.StatusBadRequest)
		return
	}

	result, err := h.analyzer.GetResult(r.Context(), rawURL)
	if err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			h.writeJSONError(w, "No stored result for the given URL", http.StatusNotFound)
			return
		}
		slog.Error("Failed to load stored result", "url", rawURL, "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, response.FromResult(result))
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeAnalysisError(w http.ResponseWriter, source string, err error) {
	switch {
	case errors.Is(err, repository.ErrRenderTimeout):
		h.writeJSONError(w, "Page render timed out", http.StatusGatewayTimeout)
	case errors.Is(err, repository.ErrNavigationFailed):
		h.writeJSONError(w, "Failed to load the page", http.StatusBadGateway)
	case errors.Is(err, repository.ErrSnapshotFailed):
		h.writeJSONError(w, "Failed to extract page layout", http.StatusBadGateway)
	case errors.Is(err, detector.ErrInvalidLayoutData):
		h.writeJSONError(w, "Page produced malformed layout data", http.StatusUnprocessableEntity)
	default:
		slog.Error("Analysis failed", "source", source, "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
