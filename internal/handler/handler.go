package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"photogallery/internal/auth"
	"photogallery/internal/errors"
	"photogallery/internal/middleware"
)

// identity returns the guard-attached claims, failing with 401 if the route
// was somehow reached without them.
func identity(c echo.Context) (*auth.Claims, error) {
	claims := middleware.IdentityFromContext(c)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "NO_TOKEN",
		})
	}
	return claims, nil
}

// uintParam parses a numeric path parameter.
func uintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(v), nil
}

// pageQuery reads the page/limit query parameters, leaving zero values for
// the service-level defaults.
func pageQuery(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

// serviceError converts a domain error into an echo HTTP error.
func serviceError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
