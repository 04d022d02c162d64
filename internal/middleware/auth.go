package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vaultpass/passgen/internal/crypto"
)

type contextKey string

const sessionKey contextKey = "session"

// JWTAuth returns middleware that requires a valid Bearer session token.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return sessionAuth(secret, true)
}

// OptionalJWTAuth attaches the session when a Bearer token is sent and lets
// anonymous requests through. A token that is sent but invalid is still
// rejected, so clients notice an expired session.
func OptionalJWTAuth(secret string) func(http.Handler) http.Handler {
	return sessionAuth(secret, false)
}

func sessionAuth(secret string, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !required && r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, reason := bearerToken(r)
			if reason != "" {
				writeJSONError(w, http.StatusUnauthorized, reason)
				return
			}

			session, err := crypto.ParseToken(token, secret)
			if err != nil {
				slog.Debug("rejected session token", "request_id", RequestIDFromContext(r.Context()), "error", err)
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>". The
// second result is a client-facing reason when the header is unusable.
func bearerToken(r *http.Request) (string, string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", "missing authorization header"
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", "invalid authorization format"
	}
	return strings.TrimSpace(token), ""
}

// WithSession returns a copy of ctx carrying s, as the auth middleware does.
func WithSession(ctx context.Context, s crypto.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	s, ok := ctx.Value(sessionKey).(crypto.Session)
	return s.UserID, ok
}

// LocaleFromContext returns the locale saved in the session, if any.
func LocaleFromContext(ctx context.Context) string {
	s, _ := ctx.Value(sessionKey).(crypto.Session)
	return s.Locale
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
