package delivery

import (
	"errors"
	"net/http"

	authdomain "konasal-backend/internal/auth/domain"
)

// StatusFor maps auth service errors onto HTTP statuses. Anything outside
// the taxonomy is an internal error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, authdomain.ErrInvalidEmail),
		errors.Is(err, authdomain.ErrWeakPassword),
		errors.Is(err, authdomain.ErrPasswordMismatch),
		errors.Is(err, authdomain.ErrInvalidDate),
		errors.Is(err, authdomain.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, authdomain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, authdomain.ErrNotVerified):
		return http.StatusForbidden
	case errors.Is(err, authdomain.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// message hides internal errors behind a generic line while passing the
// stable taxonomy through verbatim.
func message(err error) string {
	if StatusFor(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
