package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/profilekeeper/internal/server/profiles"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// validationBody carries the structured field errors of a rejected record.
type validationBody struct {
	Error   string                `json:"error"`
	Details []profiles.FieldError `json:"details"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorBody{Error: message})
}

func writeValidationError(w http.ResponseWriter, verr *profiles.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, validationBody{
		Error:   "validation failed",
		Details: verr.Fields,
	})
}
