package domain

import (
	"context"
	"time"
)

// Artist owns zero or more albums and cannot be deleted while it does.
type Artist struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ArtistRepository defines the contract for artist data access
type ArtistRepository interface {
	// Create inserts artist and fills in ID and CreatedAt. A duplicate name
	// yields ErrNameExists.
	Create(ctx context.Context, artist *Artist) error
	List(ctx context.Context) ([]Artist, error)
	GetByID(ctx context.Context, id int64) (*Artist, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// DeleteIfNoAlbums removes the artist in one statement only when it owns
	// no albums. It reports whether a row was removed.
	DeleteIfNoAlbums(ctx context.Context, id int64) (bool, error)
}
