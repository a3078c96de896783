package auth

import (
	"context"
	"net/http"
	"strings"

	"music-catalog/internal/httpx"
)

type ctxUserIDKey struct{}

// RequireAuth validates the bearer access token and puts the caller's user id
// in the request context.
func (s *Server) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			httpx.Fail(w, r, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := s.parseToken(strings.TrimPrefix(header, "Bearer "), "access")
		if err != nil {
			httpx.Fail(w, r, http.StatusUnauthorized, "invalid access token")
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserIDKey{}, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user id placed by RequireAuth.
func UserID(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxUserIDKey{})
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// WithUserID is a test helper for building requests that already carry an
// authenticated user.
func WithUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxUserIDKey{}, userID))
}
