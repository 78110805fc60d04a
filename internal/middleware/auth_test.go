package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/auth"
	"github.com/dangerclosesec/ukmhub/internal/middleware"
	"github.com/dangerclosesec/ukmhub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	claims *auth.Claims
	err    error
}

func (s stubValidator) Validate(string) (*auth.Claims, error) {
	return s.claims, s.err
}

func identityEcho(t *testing.T, want auth.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.IdentityFrom(r.Context())
		require.True(t, ok)
		assert.Equal(t, want, id)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticate(t *testing.T) {
	memberClaims := &auth.Claims{UserID: 42, Role: model.RoleMember}

	tests := []struct {
		name      string
		header    string
		validator stubValidator
		status    int
	}{
		{"no header", "", stubValidator{claims: memberClaims}, http.StatusUnauthorized},
		{"scheme only", "Bearer", stubValidator{claims: memberClaims}, http.StatusUnauthorized},
		{"wrong scheme", "Token abc", stubValidator{claims: memberClaims}, http.StatusForbidden},
		{"extra parts", "Bearer a b", stubValidator{claims: memberClaims}, http.StatusForbidden},
		{"rejected token", "Bearer abc", stubValidator{err: errors.New("expired")}, http.StatusForbidden},
		{"valid token", "Bearer abc", stubValidator{claims: memberClaims}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := middleware.Authenticate(tt.validator)(identityEcho(t, auth.Identity{UserID: 42, Role: model.RoleMember}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAuthenticateWithRealTokens(t *testing.T) {
	tokens, err := auth.NewTokenManager("secret", time.Hour)
	require.NoError(t, err)
	token, err := tokens.Generate(1, model.RoleAdmin)
	require.NoError(t, err)

	h := middleware.Authenticate(tokens)(
		middleware.RequireRole(model.RoleAdmin)(identityEcho(t, auth.Identity{UserID: 1, Role: model.RoleAdmin})),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := middleware.RequireRole(model.RoleAdmin)(next)

	t.Run("no identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("member", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: 42, Role: model.RoleMember}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"Admin access only"}`, rec.Body.String())
	})

	t.Run("admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: 1, Role: model.RoleAdmin}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAuthenticateWithGroupMessages(t *testing.T) {
	msgs := middleware.AuthMessages{Missing: "Login diperlukan untuk komen!", Invalid: "Token tidak valid"}
	h := middleware.AuthenticateWith(stubValidator{err: errors.New("bad signature")}, msgs)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("handler reached") }),
	)

	tests := []struct {
		header string
		status int
		body   string
	}{
		{"", http.StatusUnauthorized, `{"error":"Login diperlukan untuk komen!"}`},
		{"Bearer abc", http.StatusForbidden, `{"error":"Token tidak valid"}`},
		{"Token abc", http.StatusForbidden, `{"error":"Token tidak valid"}`},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, tt.status, rec.Code, tt.header)
		assert.JSONEq(t, tt.body, rec.Body.String(), tt.header)
	}
}
