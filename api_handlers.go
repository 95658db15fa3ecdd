package main

import (
	"encoding/json"
	"net/http"

	"schoolpulse/internal/ask"
	"schoolpulse/internal/store"
)

// APIHandler handles JSON API requests. The school id arrives on the request
// because session/auth management is owned by the surrounding application;
// this layer only threads it into the pipeline.
type APIHandler struct {
	Pipeline *ask.Pipeline
	Store    *store.Store
}

type questionRequest struct {
	Question string `json:"question"`
	SchoolID string `json:"school_id"`
}

type explainRequest struct {
	Question string    `json:"question"`
	Rows     []ask.Row `json:"rows"`
}

// GenerateSQL handles generation-only requests: question in, scoped
// validated SQL (or a blocked/failed outcome) out.
func (h *APIHandler) GenerateSQL(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Question == "" || req.SchoolID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "question and school_id are required"})
		return
	}

	result := h.Pipeline.GenerateSQL(r.Context(), req.Question, req.SchoolID)
	respondJSON(w, http.StatusOK, result)
}

// ExplainResults handles explanation-only requests for rows the caller
// already has.
func (h *APIHandler) ExplainResults(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Question == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "question is required"})
		return
	}

	result := h.Pipeline.ExplainResults(r.Context(), req.Question, req.Rows)
	respondJSON(w, http.StatusOK, result)
}

// Answer handles full question-to-answer requests.
func (h *APIHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Question == "" || req.SchoolID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "question and school_id are required"})
		return
	}

	result := h.Pipeline.Answer(r.Context(), req.Question, req.SchoolID, h.Store)
	respondJSON(w, http.StatusOK, result)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil && logger != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}
