package application

import (
	"context"
	"strings"

	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/domain"
	notification "github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/juliocloud/s206-projeto-final/internal/shared/validation"
)

// CreateTrackCommand uses a pointer for Duration so an explicit 0 is told
// apart from an absent field.
type CreateTrackCommand struct {
	Name     string `json:"name" validate:"required"`
	Duration *int   `json:"duration" validate:"required"`
	AlbumID  int64  `json:"albumId" validate:"required"`
}

// TrackWithLyrics is a track read. Lyrics is nil when the lookup found
// nothing or failed.
type TrackWithLyrics struct {
	domain.Track
	Lyrics *string `json:"lyrics"`
}

type TrackService struct {
	tracks    domain.TrackRepository
	albums    domain.AlbumRepository
	lyrics    LyricsProvider
	publisher notification.Publisher
}

func NewTrackService(tracks domain.TrackRepository, albums domain.AlbumRepository, lyrics LyricsProvider, publisher notification.Publisher) *TrackService {
	if lyrics == nil {
		lyrics = noLyrics{}
	}
	if publisher == nil {
		publisher = notification.NopPublisher{}
	}
	return &TrackService{tracks: tracks, albums: albums, lyrics: lyrics, publisher: publisher}
}

func (s *TrackService) CreateTrack(ctx context.Context, cmd CreateTrackCommand) (*domain.Track, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := validation.Struct(cmd); err != nil {
		return nil, domain.ErrMissingField.Wrap(err)
	}
	switch d := *cmd.Duration; {
	case d < 0:
		return nil, domain.ErrDurationNegative
	case d == 0:
		return nil, domain.ErrDurationZero
	}

	exists, err := s.albums.Exists(ctx, cmd.AlbumID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrAlbumNotFound
	}

	track := &domain.Track{Name: cmd.Name, Duration: *cmd.Duration, AlbumID: cmd.AlbumID}
	if err := s.tracks.Create(ctx, track); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Int64("track_id", track.ID).Int64("album_id", track.AlbumID).Msg("track created")
	s.publisher.Publish(ctx, notification.Event{Type: notification.TrackCreated, EntityID: track.ID, Name: track.Name})
	return track, nil
}

// GetTrack makes exactly one lyrics lookup per successful read.
func (s *TrackService) GetTrack(ctx context.Context, id int64) (*TrackWithLyrics, error) {
	track, err := s.tracks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &TrackWithLyrics{Track: *track}
	if text, ok := s.lyrics.Lookup(ctx, track.Name); ok {
		out.Lyrics = &text
	}
	return out, nil
}
