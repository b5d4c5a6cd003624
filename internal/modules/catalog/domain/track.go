package domain

import (
	"context"
	"time"
)

// Track duration is in whole seconds and always positive once stored.
type Track struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Duration  int       `json:"duration" db:"duration"`
	AlbumID   int64     `json:"albumId" db:"album_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// TrackRepository defines the contract for track data access
type TrackRepository interface {
	// Create inserts track. A missing album yields ErrAlbumNotFound.
	Create(ctx context.Context, track *Track) error
	GetByID(ctx context.Context, id int64) (*Track, error)
}
