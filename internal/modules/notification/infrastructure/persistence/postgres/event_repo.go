package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
)

type PgEventRepository struct {
	db *sqlx.DB
}

func NewPgEventRepository(db *sqlx.DB) *PgEventRepository {
	return &PgEventRepository{db: db}
}

func (r *PgEventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO catalog_events (type, entity_id, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query, e.Type, e.EntityID, e.Name).Scan(&e.Seq, &e.At); err != nil {
		return fmt.Errorf("insert catalog event: %w", err)
	}
	return nil
}

func (r *PgEventRepository) List(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	query := `
		SELECT id, type, entity_id, name, created_at
		FROM catalog_events
		ORDER BY id DESC
		LIMIT $1 OFFSET $2`
	events := []domain.Event{}
	if err := r.db.SelectContext(ctx, &events, query, limit, offset); err != nil {
		return nil, fmt.Errorf("list catalog events: %w", err)
	}
	return events, nil
}
