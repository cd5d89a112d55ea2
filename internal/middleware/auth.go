package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizmatchke/bizmatchke/internal/auth"
)

// Auth returns a middleware that authenticates requests via the session
// cookie. Any decode failure, tampering included, is treated as "no
// session": the cookie is cleared and the request rejected with 401. A
// valid session is injected into the request context.
func Auth(sessions *auth.SessionCodec, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessions.SessionFromRequest(r)
			if err != nil {
				reason := "invalid_session"
				if errors.Is(err, auth.ErrSessionExpired) {
					reason = "session_expired"
				}

				logger.Warn("authentication failed",
					slog.String("reason", reason),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)

				sessions.ClearCookie(w)
				writeAuthError(w)
				return
			}

			ctx := auth.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthError writes a 401 Unauthorized response.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Not authenticated","code":"UNAUTHENTICATED"}`))
}
