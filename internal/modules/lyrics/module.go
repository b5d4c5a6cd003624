package lyrics

import (
	"context"
	"net/http"

	"github.com/juliocloud/s206-projeto-final/internal/modules/lyrics/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/lyrics/infrastructure/httpclient"
)

// Provider is what the catalog consumes.
type Provider interface {
	Lookup(ctx context.Context, trackName string) (string, bool)
}

type Config struct {
	Enabled bool
	BaseURL string
	application.Config
}

// Module represents the Lyrics module
type Module struct {
	provider Provider
}

func NewModule(cfg Config) *Module {
	if !cfg.Enabled {
		return &Module{provider: application.Disabled{}}
	}
	client := httpclient.New(cfg.BaseURL, &http.Client{})
	return &Module{provider: application.NewService(client, cfg.Config)}
}

func (m *Module) Provider() Provider {
	return m.provider
}
