package domain

import "github.com/juliocloud/s206-projeto-final/internal/shared/apperror"

var (
	ErrNameRequired = apperror.Validation("name required")
	ErrMissingField = apperror.Validation("missing field")
	ErrNameExists   = apperror.Conflict("name exists")
	ErrHasAlbums    = apperror.Conflict("has albums")
	ErrNotFound     = apperror.NotFound("not found")

	ErrArtistNotFound = apperror.NotFound("artist not found")
	ErrAlbumNotFound  = apperror.NotFound("album not found")

	// Negative and zero durations are reported with different messages.
	ErrDurationNegative = apperror.Validation("duration must be positive")
	ErrDurationZero     = apperror.Validation("duration invalid")
)
