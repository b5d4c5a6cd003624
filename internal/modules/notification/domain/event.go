package domain

import (
	"context"
	"time"
)

type EventType string

const (
	ArtistCreated     EventType = "artist.created"
	ArtistDeleted     EventType = "artist.deleted"
	AlbumCreated      EventType = "album.created"
	AlbumCoverUpdated EventType = "album.cover_updated"
	TrackCreated      EventType = "track.created"
	LabelCreated      EventType = "label.created"
	LabelUpdated      EventType = "label.updated"
	LabelDeleted      EventType = "label.deleted"
)

// Event records a successful catalog mutation. Seq is assigned when the
// event is stored; EntityID is the id of the mutated record.
type Event struct {
	Seq      int64     `json:"seq" db:"id"`
	Type     EventType `json:"type" db:"type"`
	EntityID int64     `json:"id" db:"entity_id"`
	Name     string    `json:"name,omitempty" db:"name"`
	At       time.Time `json:"at" db:"created_at"`
}

// Publisher is implemented by anything that fans catalog events out.
// Publish never fails the caller's operation.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}

type EventRepository interface {
	// Create stores event and fills in Seq and At.
	Create(ctx context.Context, event *Event) error
	// List returns the newest events first.
	List(ctx context.Context, limit, offset int) ([]Event, error)
}
