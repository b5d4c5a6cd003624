package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/modules/analytics/domain"
)

type PgStatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *PgStatsRepository {
	return &PgStatsRepository{db: db}
}

func (r *PgStatsRepository) Totals(ctx context.Context) (domain.Overview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM artists) AS artists,
			(SELECT COUNT(*) FROM albums) AS albums,
			(SELECT COUNT(*) FROM tracks) AS tracks,
			(SELECT COUNT(*) FROM labels) AS labels,
			(SELECT COALESCE(SUM(duration), 0) FROM tracks) AS total_duration
	`
	var out domain.Overview
	if err := r.db.GetContext(ctx, &out, query); err != nil {
		return domain.Overview{}, fmt.Errorf("failed to count catalog: %w", err)
	}
	return out, nil
}

// TopArtists ranks artists by track count, ties broken by id.
func (r *PgStatsRepository) TopArtists(ctx context.Context, limit int) ([]domain.ArtistStat, error) {
	query := `
		SELECT ar.id AS artist_id, ar.name,
			COUNT(DISTINCT al.id) AS albums,
			COUNT(t.id) AS tracks
		FROM artists ar
		LEFT JOIN albums al ON al.artist_id = ar.id
		LEFT JOIN tracks t ON t.album_id = al.id
		GROUP BY ar.id, ar.name
		ORDER BY tracks DESC, ar.id ASC
		LIMIT $1
	`
	stats := []domain.ArtistStat{}
	if err := r.db.SelectContext(ctx, &stats, query, limit); err != nil {
		return nil, fmt.Errorf("failed to rank artists: %w", err)
	}
	return stats, nil
}
