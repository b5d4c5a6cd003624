package http

import (
	"context"
	"io"

	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/domain"
)

// ArtistService defines the artist operations the handler needs
type ArtistService interface {
	CreateArtist(ctx context.Context, cmd application.CreateArtistCommand) (*domain.Artist, error)
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	GetArtist(ctx context.Context, id int64) (*domain.Artist, error)
	DeleteArtist(ctx context.Context, id int64) error
}

// AlbumService defines the album operations the handler needs
type AlbumService interface {
	CreateAlbum(ctx context.Context, cmd application.CreateAlbumCommand) (*domain.Album, error)
	GetAlbum(ctx context.Context, id int64) (*domain.Album, error)
	ListAlbumsByArtist(ctx context.Context, artistID int64) ([]domain.Album, error)
	UploadCover(ctx context.Context, id int64, image io.Reader) (*domain.Album, error)
}

// TrackService defines the track operations the handler needs
type TrackService interface {
	CreateTrack(ctx context.Context, cmd application.CreateTrackCommand) (*domain.Track, error)
	GetTrack(ctx context.Context, id int64) (*application.TrackWithLyrics, error)
}
