package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blackriis/nobicha-sub001/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (jwt.Service, http.Handler) {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret-key", "15m")

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux := http.NewServeMux()
	verify := jwtauth.Verifier(jwtService.JWTAuth())
	mux.Handle("/protected", verify(AuthRequired(ok)))
	mux.Handle("/admin", verify(AuthRequired(AdminOnly(ok))))

	return jwtService, mux
}

func doRequest(handler http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	jwtService, handler := newTestRouter(t)

	t.Run("missing token", func(t *testing.T) {
		rec := doRequest(handler, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(handler, "/protected", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := jwt.NewJWTService("different-secret", "15m")
		token, _, err := other.GenerateAccessToken("emp-1", nil, false)
		require.NoError(t, err)

		rec := doRequest(handler, "/protected", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("access token without employee_id", func(t *testing.T) {
		ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
		_, token, err := ja.Encode(map[string]interface{}{"type": "access"})
		require.NoError(t, err)

		rec := doRequest(handler, "/protected", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid access token", func(t *testing.T) {
		token, _, err := jwtService.GenerateAccessToken("emp-1", nil, false)
		require.NoError(t, err)

		rec := doRequest(handler, "/protected", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	jwtService, handler := newTestRouter(t)

	t.Run("non-admin token rejected", func(t *testing.T) {
		branchID := "branch-1"
		token, _, err := jwtService.GenerateAccessToken("emp-1", &branchID, false)
		require.NoError(t, err)

		rec := doRequest(handler, "/admin", token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin token allowed", func(t *testing.T) {
		token, _, err := jwtService.GenerateAccessToken("emp-admin", nil, true)
		require.NoError(t, err)

		rec := doRequest(handler, "/admin", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
