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

type PgArtistRepository struct {
	db *sqlx.DB
}

func NewArtistRepository(db *sqlx.DB) *PgArtistRepository {
	return &PgArtistRepository{db: db}
}

func (r *PgArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	query := `INSERT INTO artists (name) VALUES ($1) RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, artist.Name).Scan(&artist.ID, &artist.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrNameExists.Wrap(err)
		}
		return fmt.Errorf("insert artist: %w", err)
	}
	return nil
}

func (r *PgArtistRepository) List(ctx context.Context) ([]domain.Artist, error) {
	artists := []domain.Artist{}
	query := `SELECT id, name, created_at FROM artists ORDER BY id`
	if err := r.db.SelectContext(ctx, &artists, query); err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

func (r *PgArtistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	artist := &domain.Artist{}
	query := `SELECT id, name, created_at FROM artists WHERE id = $1`
	err := r.db.GetContext(ctx, artist, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select artist: %w", err)
	}
	return artist, nil
}

func (r *PgArtistRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM artists WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check artist: %w", err)
	}
	return exists, nil
}

// DeleteIfNoAlbums deletes in a single statement so an album inserted
// concurrently either blocks the delete or fails its own foreign key check.
func (r *PgArtistRepository) DeleteIfNoAlbums(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM artists a
		WHERE a.id = $1
		  AND NOT EXISTS (SELECT 1 FROM albums al WHERE al.artist_id = a.id)`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return false, domain.ErrHasAlbums.Wrap(err)
		}
		return false, fmt.Errorf("delete artist: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete artist: %w", err)
	}
	return n > 0, nil
}
