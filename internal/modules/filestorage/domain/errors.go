package domain

import "github.com/juliocloud/s206-projeto-final/internal/shared/apperror"

var (
	ErrInvalidImage = apperror.Validation("invalid image")
	ErrInvalidKey   = apperror.Validation("invalid storage key")
)
