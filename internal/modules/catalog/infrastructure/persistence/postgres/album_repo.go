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

const albumColumns = `id, name, artist_id, cover_url, created_at`

type PgAlbumRepository struct {
	db *sqlx.DB
}

func NewAlbumRepository(db *sqlx.DB) *PgAlbumRepository {
	return &PgAlbumRepository{db: db}
}

func (r *PgAlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	query := `INSERT INTO albums (name, artist_id) VALUES ($1, $2) RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, album.Name, album.ArtistID).Scan(&album.ID, &album.CreatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.ErrArtistNotFound.Wrap(err)
		}
		return fmt.Errorf("insert album: %w", err)
	}
	return nil
}

func (r *PgAlbumRepository) GetByID(ctx context.Context, id int64) (*domain.Album, error) {
	album := &domain.Album{}
	err := r.db.GetContext(ctx, album, `SELECT `+albumColumns+` FROM albums WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select album: %w", err)
	}
	return album, nil
}

func (r *PgAlbumRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM albums WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("check album: %w", err)
	}
	return exists, nil
}

// ListByArtist never checks that the artist exists; an unknown artist simply
// has no albums.
func (r *PgAlbumRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Album, error) {
	albums := []domain.Album{}
	query := `SELECT ` + albumColumns + ` FROM albums WHERE artist_id = $1 ORDER BY id`
	if err := r.db.SelectContext(ctx, &albums, query, artistID); err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	return albums, nil
}

func (r *PgAlbumRepository) UpdateCover(ctx context.Context, id int64, coverURL string) (*domain.Album, error) {
	album := &domain.Album{}
	query := `UPDATE albums SET cover_url = $2 WHERE id = $1 RETURNING ` + albumColumns
	err := r.db.QueryRowxContext(ctx, query, id, coverURL).StructScan(album)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update album cover: %w", err)
	}
	return album, nil
}
