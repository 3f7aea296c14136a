package middleware

import (
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"photogallery/internal/auth"
	apperrors "photogallery/internal/errors"
)

// IdentityKey is the echo context key under which the authenticated claims
// are stored.
const IdentityKey = "identity"

// RequireIdentity gates a route group on a valid bearer token. A missing or
// malformed Authorization header stops the request with 401; a header whose
// token fails verification stops it with 403. On success the decoded claims
// are attached to the context under IdentityKey.
func RequireIdentity(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: IdentityKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.Verify(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, auth.ErrInvalidToken) {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "invalid or expired token",
					Code:  "INVALID_TOKEN",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "no token provided",
				Code:  "NO_TOKEN",
			})
		},
	})
}

// OptionalIdentity attaches claims when a valid bearer token is present but
// never rejects the request. Routes using it serve both anonymous and
// authenticated callers; visibility rules downstream decide what they see.
func OptionalIdentity(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				if claims, err := jwtService.Verify(token); err == nil {
					c.Set(IdentityKey, claims)
				}
			}
			return next(c)
		}
	}
}

// IdentityFromContext returns the claims attached by the guard, or nil when
// the request is unauthenticated.
func IdentityFromContext(c echo.Context) *auth.Claims {
	claims, _ := c.Get(IdentityKey).(*auth.Claims)
	return claims
}
