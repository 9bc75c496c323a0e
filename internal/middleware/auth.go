package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"server/internal/auth"
)

type claimsKeyType string

const claimsKey claimsKeyType = "auth_claims"

// RequireAuth extracts and verifies the bearer token. A missing or malformed
// Authorization header is 401; a token that fails signature or expiry checks is
// 403. On success the verified claims ride the request context.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				denied(w, http.StatusUnauthorized, "unauthorized", "missing authorization header")
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				denied(w, http.StatusUnauthorized, "unauthorized", "invalid authorization header")
				return
			}
			claims, err := auth.VerifyToken(secret, parts[1])
			if err != nil {
				if errors.Is(err, auth.ErrTokenMalformed) {
					denied(w, http.StatusUnauthorized, "unauthorized", "malformed token")
					return
				}
				denied(w, http.StatusForbidden, "forbidden", "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

func denied(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code, "message": message})
}

// ContextWithClaims attaches verified claims to ctx.
func ContextWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	if claims == nil {
		return ctx
	}
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the verified claims set by RequireAuth, or nil when
// the request never passed the auth gate.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	if v, ok := ctx.Value(claimsKey).(*auth.Claims); ok {
		return v
	}
	return nil
}
