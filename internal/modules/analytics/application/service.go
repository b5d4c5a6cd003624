package application

import (
	"context"
	"time"

	"github.com/juliocloud/s206-projeto-final/internal/modules/analytics/domain"
)

const (
	DefaultTopArtists = 5
	MaxTopArtists     = 20
)

type StatsService struct {
	repo domain.StatsRepository
	now  func() time.Time
}

func NewStatsService(repo domain.StatsRepository) *StatsService {
	return &StatsService{repo: repo, now: time.Now}
}

// Overview returns catalog totals and the top artists by track count. top
// is clamped to [1, MaxTopArtists]; zero or negative selects
// DefaultTopArtists.
func (s *StatsService) Overview(ctx context.Context, top int) (*domain.Overview, error) {
	switch {
	case top <= 0:
		top = DefaultTopArtists
	case top > MaxTopArtists:
		top = MaxTopArtists
	}

	out, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	out.TopArtists, err = s.repo.TopArtists(ctx, top)
	if err != nil {
		return nil, err
	}
	out.GeneratedAt = s.now().UTC()
	return &out, nil
}
