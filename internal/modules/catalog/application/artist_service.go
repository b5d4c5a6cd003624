package application

import (
	"context"
	"strings"

	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/domain"
	notification "github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/juliocloud/s206-projeto-final/internal/shared/validation"
)

type CreateArtistCommand struct {
	Name string `json:"name" validate:"required"`
}

type ArtistService struct {
	artists   domain.ArtistRepository
	publisher notification.Publisher
}

func NewArtistService(artists domain.ArtistRepository, publisher notification.Publisher) *ArtistService {
	if publisher == nil {
		publisher = notification.NopPublisher{}
	}
	return &ArtistService{artists: artists, publisher: publisher}
}

// CreateArtist inserts without checking for duplicates first; the unique
// constraint decides which of two concurrent creates wins.
func (s *ArtistService) CreateArtist(ctx context.Context, cmd CreateArtistCommand) (*domain.Artist, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := validation.Struct(cmd); err != nil {
		return nil, domain.ErrNameRequired.Wrap(err)
	}

	artist := &domain.Artist{Name: cmd.Name}
	if err := s.artists.Create(ctx, artist); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Int64("artist_id", artist.ID).Msg("artist created")
	s.publisher.Publish(ctx, notification.Event{Type: notification.ArtistCreated, EntityID: artist.ID, Name: artist.Name})
	return artist, nil
}

func (s *ArtistService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	return s.artists.List(ctx)
}

func (s *ArtistService) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	return s.artists.GetByID(ctx, id)
}

// DeleteArtist removes an artist that owns no albums. When nothing was
// deleted a follow-up read tells a missing artist apart from one that still
// has albums.
func (s *ArtistService) DeleteArtist(ctx context.Context, id int64) error {
	deleted, err := s.artists.DeleteIfNoAlbums(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		exists, err := s.artists.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrHasAlbums
	}

	logging.Ctx(ctx).Info().Int64("artist_id", id).Msg("artist deleted")
	s.publisher.Publish(ctx, notification.Event{Type: notification.ArtistDeleted, EntityID: id})
	return nil
}
