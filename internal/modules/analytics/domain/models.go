package domain

import (
	"context"
	"time"
)

// Overview summarizes the size of the catalog.
type Overview struct {
	Artists              int64        `json:"artists" db:"artists"`
	Albums               int64        `json:"albums" db:"albums"`
	Tracks               int64        `json:"tracks" db:"tracks"`
	Labels               int64        `json:"labels" db:"labels"`
	TotalDurationSeconds int64        `json:"totalDurationSeconds" db:"total_duration"`
	TopArtists           []ArtistStat `json:"topArtists" db:"-"`
	GeneratedAt          time.Time    `json:"generatedAt" db:"-"`
}

// ArtistStat counts the albums and tracks credited to one artist.
type ArtistStat struct {
	ArtistID int64  `json:"artistId" db:"artist_id"`
	Name     string `json:"name" db:"name"`
	Albums   int64  `json:"albums" db:"albums"`
	Tracks   int64  `json:"tracks" db:"tracks"`
}

type StatsRepository interface {
	Totals(ctx context.Context) (Overview, error)
	TopArtists(ctx context.Context, limit int) ([]ArtistStat, error)
}
