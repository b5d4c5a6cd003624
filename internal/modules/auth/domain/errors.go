package domain

import "github.com/juliocloud/s206-projeto-final/internal/shared/apperror"

var (
	ErrMissingField       = apperror.Validation("missing field")
	ErrInvalidEmail       = apperror.Validation("invalid email")
	ErrPasswordTooLong    = apperror.Validation("password too long")
	ErrEmailExists        = apperror.Conflict("email exists")
	ErrUserNotFound       = apperror.NotFound("user not found")
	ErrInvalidCredentials = apperror.Unauthorized("invalid credentials")
	ErrTooManyAttempts    = apperror.TooManyRequests("too many attempts")

	// Bearer token failures: absent is 401, present but unusable is 403.
	ErrMissingToken = apperror.Unauthorized("unauthorized")
	ErrInvalidToken = apperror.Forbidden("invalid token")
)
