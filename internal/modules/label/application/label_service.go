package application

import (
	"context"
	"strings"

	"github.com/juliocloud/s206-projeto-final/internal/modules/label/domain"
	notification "github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/juliocloud/s206-projeto-final/internal/shared/validation"
)

// LabelRequest is the body of create and update calls.
type LabelRequest struct {
	Name    string  `json:"name" validate:"required"`
	Country *string `json:"country"`
}

func (r *LabelRequest) normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Country != nil {
		c := strings.TrimSpace(*r.Country)
		if c == "" {
			r.Country = nil
		} else {
			r.Country = &c
		}
	}
	if err := validation.Struct(r); err != nil {
		return domain.ErrNameRequired.Wrap(err)
	}
	return nil
}

type LabelService struct {
	repo      domain.LabelRepository
	publisher notification.Publisher
}

func NewLabelService(repo domain.LabelRepository, publisher notification.Publisher) *LabelService {
	if publisher == nil {
		publisher = notification.NopPublisher{}
	}
	return &LabelService{repo: repo, publisher: publisher}
}

func (s *LabelService) CreateLabel(ctx context.Context, req LabelRequest) (*domain.Label, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}

	label := &domain.Label{Name: req.Name, Country: req.Country}
	if err := s.repo.Create(ctx, label); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Int64("label_id", label.ID).Msg("label created")
	s.publisher.Publish(ctx, notification.Event{Type: notification.LabelCreated, EntityID: label.ID, Name: label.Name})
	return label, nil
}

func (s *LabelService) ListLabels(ctx context.Context) ([]domain.Label, error) {
	return s.repo.List(ctx)
}

func (s *LabelService) GetLabel(ctx context.Context, id int64) (*domain.Label, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateLabel replaces name and country. The unique constraint is checked
// again by the store, so renaming onto an existing name is a conflict.
func (s *LabelService) UpdateLabel(ctx context.Context, id int64, req LabelRequest) (*domain.Label, error) {
	if err := req.normalize(); err != nil {
		return nil, err
	}

	label := &domain.Label{ID: id, Name: req.Name, Country: req.Country}
	if err := s.repo.Update(ctx, label); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, notification.Event{Type: notification.LabelUpdated, EntityID: label.ID, Name: label.Name})
	return label, nil
}

func (s *LabelService) DeleteLabel(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, notification.Event{Type: notification.LabelDeleted, EntityID: id})
	return nil
}
