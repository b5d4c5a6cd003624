package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/infrastructure/database"
)

type PgUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a PostgreSQL-backed domain.UserRepository.
func NewUserRepository(db *sqlx.DB) *PgUserRepository {
	return &PgUserRepository{db: db}
}

// Create inserts the user and fills in the generated id and timestamp.
// A duplicate email is reported as domain.ErrEmailExists.
func (r *PgUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrEmailExists.Wrap(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail implements domain.UserRepository
func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`, email)
}

// GetByID implements domain.UserRepository
func (r *PgUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`, id)
}

func (r *PgUserRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.GetContext(ctx, user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}
