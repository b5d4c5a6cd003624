package analytics

import (
	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/modules/analytics/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/analytics/infrastructure/persistence/postgres"
	analytics_http "github.com/juliocloud/s206-projeto-final/internal/modules/analytics/interfaces/http"
)

// Module serves catalog statistics.
type Module struct {
	service *application.StatsService
	handler *analytics_http.StatsHandler
}

func NewModule(db *sqlx.DB) *Module {
	service := application.NewStatsService(postgres.NewStatsRepository(db))

	return &Module{
		service: service,
		handler: analytics_http.NewStatsHandler(service),
	}
}

func (m *Module) Service() *application.StatsService {
	return m.service
}

func (m *Module) HTTPHandler() *analytics_http.StatsHandler {
	return m.handler
}
