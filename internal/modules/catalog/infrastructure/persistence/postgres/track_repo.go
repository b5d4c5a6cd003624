package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/modules/catalog/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/infrastructure/database"
)

type PgTrackRepository struct {
	db *sqlx.DB
}

func NewTrackRepository(db *sqlx.DB) *PgTrackRepository {
	return &PgTrackRepository{db: db}
}

func (r *PgTrackRepository) Create(ctx context.Context, track *domain.Track) error {
	query := `INSERT INTO tracks (name, duration, album_id) VALUES ($1, $2, $3) RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, track.Name, track.Duration, track.AlbumID).Scan(&track.ID, &track.CreatedAt)
	if err != nil {
		switch {
		case database.IsForeignKeyViolation(err):
			return domain.ErrAlbumNotFound.Wrap(err)
		case database.IsCheckViolation(err):
			return domain.ErrDurationZero.Wrap(err)
		}
		return fmt.Errorf("insert track: %w", err)
	}
	return nil
}

func (r *PgTrackRepository) GetByID(ctx context.Context, id int64) (*domain.Track, error) {
	track := &domain.Track{}
	query := `SELECT id, name, duration, album_id, created_at FROM tracks WHERE id = $1`
	err := r.db.GetContext(ctx, track, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select track: %w", err)
	}
	return track, nil
}
