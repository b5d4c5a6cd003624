package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/modules/label/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/infrastructure/database"
)

const labelColumns = `id, name, country, created_at, updated_at`

type PgLabelRepository struct {
	db *sqlx.DB
}

func NewLabelRepository(db *sqlx.DB) *PgLabelRepository {
	return &PgLabelRepository{db: db}
}

func (r *PgLabelRepository) Create(ctx context.Context, label *domain.Label) error {
	query := `INSERT INTO labels (name, country) VALUES ($1, $2) RETURNING ` + labelColumns

	err := r.db.QueryRowxContext(ctx, query, label.Name, label.Country).StructScan(label)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrNameExists.Wrap(err)
		}
		return fmt.Errorf("insert label: %w", err)
	}
	return nil
}

func (r *PgLabelRepository) List(ctx context.Context) ([]domain.Label, error) {
	labels := []domain.Label{}
	if err := r.db.SelectContext(ctx, &labels, `SELECT `+labelColumns+` FROM labels ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return labels, nil
}

func (r *PgLabelRepository) GetByID(ctx context.Context, id int64) (*domain.Label, error) {
	label := &domain.Label{}
	err := r.db.GetContext(ctx, label, `SELECT `+labelColumns+` FROM labels WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select label: %w", err)
	}
	return label, nil
}

// Update overwrites name and country. A nil Country clears it.
func (r *PgLabelRepository) Update(ctx context.Context, label *domain.Label) error {
	query := `
		UPDATE labels
		SET name = $2, country = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + labelColumns

	err := r.db.QueryRowxContext(ctx, query, label.ID, label.Name, label.Country).StructScan(label)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound
	case database.IsUniqueViolation(err):
		return domain.ErrNameExists.Wrap(err)
	case err != nil:
		return fmt.Errorf("update label: %w", err)
	}
	return nil
}

func (r *PgLabelRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
