package auth

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/infrastructure/persistence/postgres"
	auth_http "github.com/juliocloud/s206-projeto-final/internal/modules/auth/interfaces/http"
)

// Module represents the Auth module
type Module struct {
	service    *application.AuthService
	repository *postgres.PgUserRepository
	handler    *auth_http.AuthHandler
}

// NewModule creates and initializes the Auth module. throttle may be nil.
func NewModule(db *sqlx.DB, jwtSecret string, jwtExpiry time.Duration, throttle application.LoginThrottle) (*Module, error) {
	repository := postgres.NewUserRepository(db)
	service := application.NewAuthService(repository, jwtSecret, jwtExpiry, throttle)
	handler := auth_http.NewAuthHandler(service)

	return &Module{
		service:    service,
		repository: repository,
		handler:    handler,
	}, nil
}

// Service returns the auth service for use by the gateway layer
func (m *Module) Service() *application.AuthService {
	return m.service
}

// UserRepository returns the user repository
func (m *Module) UserRepository() *postgres.PgUserRepository {
	return m.repository
}

// HTTPHandler returns the HTTP handler for the auth module
func (m *Module) HTTPHandler() *auth_http.AuthHandler {
	return m.handler
}
