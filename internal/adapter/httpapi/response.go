package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vmcoelho/bancaflow-backend/internal/domain"
	"github.com/vmcoelho/bancaflow-backend/internal/usecase/auth"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to HTTP status codes:
// ValidationError -> 400, NotFoundError -> 404, bad credentials -> 401,
// everything else -> 500 with the detail kept out of the response body.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case domain.IsNotFoundError(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// writeBadRequest reports a malformed request body or parameter
func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
