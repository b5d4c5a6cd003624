package application

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	persistTimeout = 2 * time.Second
)

// Broadcaster delivers an encoded event to live subscribers.
type Broadcaster interface {
	BroadcastMessage(message []byte)
}

// EventService stores catalog events and pushes them to websocket
// subscribers. It implements domain.Publisher.
type EventService struct {
	repo domain.EventRepository
	hub  Broadcaster
}

func NewEventService(repo domain.EventRepository, hub Broadcaster) *EventService {
	return &EventService{repo: repo, hub: hub}
}

// Publish records event and broadcasts it. Failures are logged; the mutation
// that produced the event has already been committed.
func (s *EventService) Publish(ctx context.Context, event domain.Event) {
	log := logging.Ctx(ctx)

	// The request may be cancelled once the response is written.
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if err := s.repo.Create(pctx, &event); err != nil {
		log.Warn().Err(err).Str("event", string(event.Type)).Int64("entity_id", event.EntityID).Msg("failed to store catalog event")
		event.At = time.Now().UTC()
	}

	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("event", string(event.Type)).Msg("failed to encode catalog event")
		return
	}
	s.hub.BroadcastMessage(payload)
}

// List returns stored events, newest first. Out of range paging values are
// replaced with defaults.
func (s *EventService) List(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}
