package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserExists is returned when the email or username is already taken.
	ErrUserExists = errors.New("email or username already in use")
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrPhotoNotFound is returned when a photo id does not exist.
	ErrPhotoNotFound = errors.New("photo not found")
	// ErrCommentNotFound is returned when a comment id does not exist.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrForbidden is returned on ownership or visibility violations.
	ErrForbidden = errors.New("access denied")
	// ErrEmptyContent is returned when a comment body is blank.
	ErrEmptyContent = errors.New("comment content must not be empty")
	// ErrNoFile is returned when an upload request carries no file.
	ErrNoFile = errors.New("no file uploaded")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate registration is
// reported as 400 rather than 409 to match the API's error convention.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_PASSWORD")
	case errors.Is(err, ErrPhotoNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PHOTO_NOT_FOUND")
	case errors.Is(err, ErrCommentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrEmptyContent):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CONTENT")
	case errors.Is(err, ErrNoFile):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_FILE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
