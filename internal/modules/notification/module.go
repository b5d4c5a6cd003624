package notification

import (
	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/modules/notification/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/notification/domain"
	"github.com/juliocloud/s206-projeto-final/internal/modules/notification/infrastructure/persistence/postgres"
	"github.com/juliocloud/s206-projeto-final/internal/modules/notification/infrastructure/websocket"
	notification_http "github.com/juliocloud/s206-projeto-final/internal/modules/notification/interfaces/http"
)

// Module owns the catalog event feed: storage, the websocket hub and the
// HTTP endpoints.
type Module struct {
	service *application.EventService
	handler *notification_http.EventHandler
	hub     *websocket.Hub
}

func NewModule(db *sqlx.DB) *Module {
	repo := postgres.NewPgEventRepository(db)
	hub := websocket.NewHub()
	go hub.Run()

	service := application.NewEventService(repo, hub)

	return &Module{
		service: service,
		handler: notification_http.NewEventHandler(service, hub),
		hub:     hub,
	}
}

// Publisher is handed to the modules that mutate the catalog.
func (m *Module) Publisher() domain.Publisher {
	return m.service
}

func (m *Module) HTTPHandler() *notification_http.EventHandler {
	return m.handler
}

// Stop disconnects every subscriber.
func (m *Module) Stop() {
	m.hub.Stop()
}
