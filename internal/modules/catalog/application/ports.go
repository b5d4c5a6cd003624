package application

import (
	"context"
	"io"
)

// LyricsProvider looks up lyrics for a track name. Lookup reports absence
// instead of failing.
type LyricsProvider interface {
	Lookup(ctx context.Context, trackName string) (string, bool)
}

// CoverStore turns an uploaded image into a stored album cover and returns
// its public URL.
type CoverStore interface {
	StoreCover(ctx context.Context, albumID int64, image io.Reader) (string, error)
	RemoveCover(ctx context.Context, url string) error
}

type noLyrics struct{}

func (noLyrics) Lookup(context.Context, string) (string, bool) { return "", false }
