package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photogallery/internal/auth"
)

func newRequest(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequireIdentity(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	token, err := jwtService.Issue(5, "bob@example.com", "bob")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "missing header rejected as unauthenticated",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed scheme rejected as unauthenticated",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token rejected as forbidden",
			authHeader: "Bearer not-a-token",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "token signed with another secret rejected as forbidden",
			authHeader: "Bearer " + mustIssue(t, "other-secret"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "valid token passes",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusOK,
		},
	}

	mw := RequireIdentity(jwtService)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newRequest(t, tt.authHeader)

			err := mw(okHandler)(c)
			if tt.wantStatus == http.StatusOK {
				assert.NoError(t, err)
				return
			}

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestRequireIdentity_AttachesClaims(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	token, err := jwtService.Issue(9, "carol@example.com", "carol")
	require.NoError(t, err)

	c, _ := newRequest(t, "Bearer "+token)

	var seen *auth.Claims
	handler := func(c echo.Context) error {
		seen = IdentityFromContext(c)
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, RequireIdentity(jwtService)(handler)(c))
	require.NotNil(t, seen)
	assert.Equal(t, uint(9), seen.UserID)
	assert.Equal(t, "carol", seen.Username)
}

func TestOptionalIdentity(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	token, err := jwtService.Issue(3, "dave@example.com", "dave")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantUserID *uint
	}{
		{
			name:       "no header proceeds anonymously",
			authHeader: "",
			wantUserID: nil,
		},
		{
			name:       "invalid token proceeds anonymously",
			authHeader: "Bearer junk",
			wantUserID: nil,
		},
		{
			name:       "valid token attaches identity",
			authHeader: "Bearer " + token,
			wantUserID: func() *uint { v := uint(3); return &v }(),
		},
	}

	mw := OptionalIdentity(jwtService)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRequest(t, tt.authHeader)

			var seen *auth.Claims
			handler := func(c echo.Context) error {
				seen = IdentityFromContext(c)
				return c.NoContent(http.StatusOK)
			}

			require.NoError(t, mw(handler)(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			if tt.wantUserID == nil {
				assert.Nil(t, seen)
			} else {
				require.NotNil(t, seen)
				assert.Equal(t, *tt.wantUserID, seen.UserID)
			}
		})
	}
}

func mustIssue(t *testing.T, secret string) string {
	t.Helper()
	token, err := auth.NewJWTService(secret).Issue(1, "x@example.com", "x")
	require.NoError(t, err)
	return token
}
