package label

import (
	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/modules/label/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/label/infrastructure/persistence/postgres"
	label_http "github.com/juliocloud/s206-projeto-final/internal/modules/label/interfaces/http"
	notification "github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
)

// Module represents the Label module
type Module struct {
	service *application.LabelService
	handler *label_http.LabelHandler
}

func NewModule(db *sqlx.DB, publisher notification.Publisher) *Module {
	repo := postgres.NewLabelRepository(db)
	service := application.NewLabelService(repo, publisher)

	return &Module{
		service: service,
		handler: label_http.NewLabelHandler(service),
	}
}

func (m *Module) Service() *application.LabelService {
	return m.service
}

func (m *Module) HTTPHandler() *label_http.LabelHandler {
	return m.handler
}
