package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/profilekeeper/internal/common"
	"github.com/dmitrijs2005/profilekeeper/internal/server/profiles"
)

type upsertRequest struct {
	ExperiencePoints *float64 `json:"experiencePoints"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Welcome to our server!!!")
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Timestamp: time.Now()})
}

// handleGetProfile serves GET /profiles/{userId}.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	profile, err := s.profiles.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("Profile data for userId %s not found", userID))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile.Plain())
}

// handleUpsertProfile serves POST /profiles/{userId}. The stored value is
// fully replaced; repeating the same request leaves the same state.
func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		// Non-numeric experiencePoints or malformed JSON: same outcome as a
		// missing field, nothing is persisted.
		writeValidationError(w, &profiles.ValidationError{Fields: []profiles.FieldError{
			{Field: "experiencePoints", Message: "is required and must be a number"},
		}})
		return
	}

	profile, err := s.profiles.Upsert(r.Context(), userID, req.ExperiencePoints)
	if err != nil {
		var verr *profiles.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile.Plain())
}
