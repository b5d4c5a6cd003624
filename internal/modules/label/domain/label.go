package domain

import (
	"context"
	"time"

	"github.com/juliocloud/s206-projeto-final/internal/shared/apperror"
)

var (
	ErrNameRequired = apperror.Validation("name required")
	ErrNameExists   = apperror.Conflict("name exists")
	ErrNotFound     = apperror.NotFound("not found")
)

// Label is a record label. Country is optional.
type Label struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Country   *string   `json:"country" db:"country"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// LabelRepository is implemented with hand-written SQL. Create and Update
// report a duplicate name as ErrNameExists; Update and Delete report a
// missing row as ErrNotFound.
type LabelRepository interface {
	Create(ctx context.Context, label *Label) error
	List(ctx context.Context) ([]Label, error)
	GetByID(ctx context.Context, id int64) (*Label, error)
	Update(ctx context.Context, label *Label) error
	Delete(ctx context.Context, id int64) error
}
