package application

import (
	"context"
	"io"
	"strings"

	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/domain"
	notification "github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/juliocloud/s206-projeto-final/internal/shared/validation"
)

// CreateAlbumCommand treats an ArtistID of 0 as missing; ids start at 1.
type CreateAlbumCommand struct {
	Name     string `json:"name" validate:"required"`
	ArtistID int64  `json:"artistId" validate:"required"`
}

type AlbumService struct {
	albums    domain.AlbumRepository
	artists   domain.ArtistRepository
	covers    CoverStore
	publisher notification.Publisher
}

func NewAlbumService(albums domain.AlbumRepository, artists domain.ArtistRepository, covers CoverStore, publisher notification.Publisher) *AlbumService {
	if publisher == nil {
		publisher = notification.NopPublisher{}
	}
	return &AlbumService{albums: albums, artists: artists, covers: covers, publisher: publisher}
}

// CreateAlbum stores the name with surrounding whitespace trimmed and
// otherwise unchanged.
func (s *AlbumService) CreateAlbum(ctx context.Context, cmd CreateAlbumCommand) (*domain.Album, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := validation.Struct(cmd); err != nil {
		return nil, domain.ErrMissingField.Wrap(err)
	}

	exists, err := s.artists.Exists(ctx, cmd.ArtistID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrArtistNotFound
	}

	album := &domain.Album{Name: cmd.Name, ArtistID: cmd.ArtistID}
	if err := s.albums.Create(ctx, album); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Int64("album_id", album.ID).Int64("artist_id", album.ArtistID).Msg("album created")
	s.publisher.Publish(ctx, notification.Event{Type: notification.AlbumCreated, EntityID: album.ID, Name: album.Name})
	return album, nil
}

func (s *AlbumService) GetAlbum(ctx context.Context, id int64) (*domain.Album, error) {
	return s.albums.GetByID(ctx, id)
}

// ListAlbumsByArtist returns an empty slice for unknown artists.
func (s *AlbumService) ListAlbumsByArtist(ctx context.Context, artistID int64) ([]domain.Album, error) {
	return s.albums.ListByArtist(ctx, artistID)
}

// UploadCover stores image as the album's cover and records its URL. The
// previous cover, if any, is removed afterwards.
func (s *AlbumService) UploadCover(ctx context.Context, id int64, image io.Reader) (*domain.Album, error) {
	current, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.covers.StoreCover(ctx, id, image)
	if err != nil {
		return nil, err
	}

	album, err := s.albums.UpdateCover(ctx, id, url)
	if err != nil {
		return nil, err
	}

	if current.CoverURL != nil && *current.CoverURL != url {
		if err := s.covers.RemoveCover(ctx, *current.CoverURL); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Int64("album_id", id).Msg("failed to remove previous cover")
		}
	}

	s.publisher.Publish(ctx, notification.Event{Type: notification.AlbumCoverUpdated, EntityID: album.ID, Name: album.Name})
	return album, nil
}
