package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "timetableportal/internal/delivery/http/helpers"
	"timetableportal/internal/domain"
)

type contextKey string

const sessionKey contextKey = "session"

// SetSession returns a context with the session set. Used by auth middleware.
func SetSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the authenticated session from the context, if present.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*domain.Session)
	return s, ok
}

// RequireSession returns a wrapper that validates the Bearer token and loads
// the referenced session fresh from the store, so an upstream token rotation
// is picked up on the very next request. Missing, invalid, or expired
// sessions respond 401 and next is not called.
func RequireSession(verifier domain.TokenVerifier, auth domain.AuthService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			sessionID, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			session, err := auth.SessionByID(r.Context(), sessionID)
			if err != nil {
				logger.DebugContext(r.Context(), "session load failed", "session_id", sessionID, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "session expired or not found")
				return
			}
			r = r.WithContext(SetSession(r.Context(), session))
			next(w, r)
		}
	}
}
