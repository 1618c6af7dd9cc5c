package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zkmedar/ctcaematch/internal/history"
)

// matchRequest is the POST /api/match body.
type matchRequest struct {
	Symptom string `json:"symptom"`
	Details string `json:"details,omitempty"`
}

// handleMatch runs the full matching pipeline for one symptom. Recoverable
// pipeline failures are a normal result shape, not an HTTP error: the
// response is always 200 with a MatchResult body, and callers discriminate
// on the presence of the "error" field.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Symptom) == "" {
		http.Error(w, "symptom is required", http.StatusBadRequest)
		return
	}

	start := time.Now()
	result := s.matcher.Match(r.Context(), req.Symptom, req.Details)
	elapsed := time.Since(start)

	if s.history != nil {
		err := s.history.Record(r.Context(), history.Entry{
			Symptom:    result.OriginalSymptom,
			Details:    result.Details,
			CTCAETerm:  result.CTCAETerm,
			Grade:      result.Grade,
			MedDRASOC:  result.MedDRASOC,
			Confidence: result.Confidence,
			Error:      result.Error,
			DurationMS: elapsed.Milliseconds(),
		})
		if err != nil {
			log.Printf("server: recording match history: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSearchTerms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusOK, s.repo.Terms())
		return
	}
	writeJSON(w, http.StatusOK, s.repo.SearchTerms(q))
}

func (s *Server) handleGetTerm(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	term := s.repo.TermByName(name)
	if term == nil {
		http.Error(w, "term not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, term)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.repo.Categories())
}

func (s *Server) handleTermsByCategory(w http.ResponseWriter, r *http.Request) {
	soc := chi.URLParam(r, "soc")
	writeJSON(w, http.StatusOK, s.repo.TermsByCategory(soc))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}
