// internal/middleware/auth.go
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dangerclosesec/ukmhub/internal/auth"
	"github.com/dangerclosesec/ukmhub/internal/domain"
	"github.com/dangerclosesec/ukmhub/internal/model"
)

// TokenValidator decodes a bearer token into claims.
type TokenValidator interface {
	Validate(tokenString string) (*auth.Claims, error)
}

// AuthMessages is the error wording a route group answers with.
type AuthMessages struct {
	Missing string
	Invalid string
}

// DefaultAuthMessages is used by Authenticate.
var DefaultAuthMessages = AuthMessages{
	Missing: domain.ErrTokenRequired.Message,
	Invalid: domain.ErrInvalidToken.Message,
}

// Authenticate validates the bearer token and attaches the caller's
// identity to the request context. A missing credential answers 401; a
// credential that is malformed or fails verification answers 403.
func Authenticate(tokens TokenValidator) func(http.Handler) http.Handler {
	return AuthenticateWith(tokens, DefaultAuthMessages)
}

// AuthenticateWith is Authenticate with group-specific error messages.
func AuthenticateWith(tokens TokenValidator, msgs AuthMessages) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, present := bearerToken(r)
			if !present {
				respondWithError(w, http.StatusUnauthorized, msgs.Missing)
				return
			}
			if token == "" {
				respondWithError(w, http.StatusForbidden, msgs.Invalid)
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				respondWithError(w, http.StatusForbidden, msgs.Invalid)
				return
			}

			ctx := auth.WithIdentity(r.Context(), claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects callers whose role differs from role. It must run
// after Authenticate.
func RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.IdentityFrom(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, domain.ErrTokenRequired.Message)
				return
			}
			if id.Role != role {
				respondWithError(w, http.StatusForbidden, domain.ErrAdminOnly.Message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken reports whether the Authorization header carries a
// credential after its scheme, and returns it when the header is a
// well-formed "Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) < 2 {
		return "", false
	}
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", true
	}
	return parts[1], true
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
