package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "userID"

// requireAuth validates the bearer token from the Authorization header and
// injects the resolved user id into the request context.
// Missing or invalid tokens get 401 without reaching the handler.
func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing authorization header"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization header must use the Bearer scheme"})
			return
		}

		userID, ok := s.AuthService.Authenticate(token)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	})
}

// userIDFrom extracts the authenticated user id injected by requireAuth
func userIDFrom(r *http.Request) uuid.UUID {
	userID, _ := r.Context().Value(userIDKey).(uuid.UUID)
	return userID
}

// bearerToken returns the raw token from the Authorization header
func bearerToken(r *http.Request) string {
	token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return token
}
