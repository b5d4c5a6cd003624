package domain

import (
	"context"
	"time"
)

type Album struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ArtistID  int64     `json:"artistId" db:"artist_id"`
	CoverURL  *string   `json:"coverUrl" db:"cover_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AlbumRepository defines the contract for album data access
type AlbumRepository interface {
	// Create inserts album. A missing artist yields ErrArtistNotFound.
	Create(ctx context.Context, album *Album) error
	GetByID(ctx context.Context, id int64) (*Album, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListByArtist(ctx context.Context, artistID int64) ([]Album, error)
	UpdateCover(ctx context.Context, id int64, coverURL string) (*Album, error)
}
