package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub/config"
	"stayhub/infras/jwt"
	otelMocks "stayhub/infras/otel/mocks"
	"stayhub/permissions"
	"stayhub/shared"
	"stayhub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPermissions = `{
  "endpoints": [
    { "path": "/v1/rooms/{id}", "method": "GET", "roles": ["owner", "admin"] },
    { "path": "/v1/public/properties/{id}/calendar-pricing", "method": "GET", "public": true }
  ]
}`

type authFixture struct {
	router http.Handler
	tokens jwt.JWT
}

func newAuthFixture(t *testing.T, withPermissions bool) authFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "stayhub"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15

	var data *permissions.PermissionData

	if withPermissions {
		parsed, err := permissions.Parse([]byte(testPermissions))
		require.NoError(t, err)

		data = parsed
	}

	tokens := jwt.New(cfg)
	auth := middleware.NewAuthRoleMiddleware(tokens, otelMocks.NewOtel(), data, cfg)

	// echoes the owner scope the handlers would act with
	scope := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("scope=" + shared.OwnerScope(r.Context())))
	}

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(auth.APIKey, auth.Auth, auth.RBAC)
		r.Route("/v1", func(v chi.Router) {
			v.Get("/rooms/{id}", scope)
			v.Get("/public/properties/{id}/calendar-pricing", scope)
		})
	})

	return authFixture{router: router, tokens: tokens}
}

func (f authFixture) bearer(t *testing.T, userID, role string) string {
	t.Helper()

	token, err := f.tokens.Issue(userID, userID+"@stayhub.test", role, jwt.AccessToken)
	require.NoError(t, err)

	return "Bearer " + token
}

func TestAuthRole(t *testing.T) {
	f := newAuthFixture(t, true)

	tests := []struct {
		name     string
		path     string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{
			name:     "missing header",
			path:     "/v1/rooms/rt-1",
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Missing authorization header"}`,
		},
		{
			name:     "wrong scheme",
			path:     "/v1/rooms/rt-1",
			headers:  map[string]string{"Authorization": "Basic abc"},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Invalid authorization header format"}`,
		},
		{
			name:     "garbage token",
			path:     "/v1/rooms/rt-1",
			headers:  map[string]string{"Authorization": "Bearer not-a-token"},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"Invalid token"}`,
		},
		{
			name:     "owner acts on own scope",
			path:     "/v1/rooms/rt-1",
			headers:  map[string]string{"Authorization": f.bearer(t, "owner-1", "owner")},
			wantCode: http.StatusOK,
			wantBody: "scope=owner-1",
		},
		{
			name:     "admin acts on every owner",
			path:     "/v1/rooms/rt-1",
			headers:  map[string]string{"Authorization": f.bearer(t, "admin-1", "admin")},
			wantCode: http.StatusOK,
			wantBody: "scope=",
		},
		{
			name:     "guest role denied",
			path:     "/v1/rooms/rt-1",
			headers:  map[string]string{"Authorization": f.bearer(t, "guest-1", "guest")},
			wantCode: http.StatusForbidden,
			wantBody: `{"error":"You don't have the required permissions"}`,
		},
		{
			name:     "public route without token",
			path:     "/v1/public/properties/p-1/calendar-pricing",
			wantCode: http.StatusOK,
			wantBody: "scope=guest",
		},
		{
			name:     "internal api key",
			path:     "/v1/rooms/rt-1",
			headers:  map[string]string{"X-API-Key": "internal-key"},
			wantCode: http.StatusOK,
			wantBody: "scope=",
		},
		{
			name:     "wrong api key",
			path:     "/v1/rooms/rt-1",
			headers:  map[string]string{"X-API-Key": "guess"},
			wantCode: http.StatusForbidden,
			wantBody: `{"error":"You don't have the required permissions"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRBACWithoutPermissions(t *testing.T) {
	f := newAuthFixture(t, false)

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms/rt-1", nil)
	req.Header.Set("Authorization", f.bearer(t, "owner-1", "owner"))

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
