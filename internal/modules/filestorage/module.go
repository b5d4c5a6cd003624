package filestorage

import (
	"context"
	"fmt"
	"strings"

	"github.com/juliocloud/s206-projeto-final/internal/modules/filestorage/application"
	"github.com/juliocloud/s206-projeto-final/internal/modules/filestorage/domain"
	"github.com/juliocloud/s206-projeto-final/internal/modules/filestorage/infrastructure/local"
	"github.com/juliocloud/s206-projeto-final/internal/modules/filestorage/infrastructure/s3"
	"github.com/juliocloud/s206-projeto-final/internal/shared/infrastructure/config"
)

// UploadsPath is where locally stored files are served.
const UploadsPath = "/uploads"

// Module represents the FileStorage module
type Module struct {
	covers   *application.CoverService
	storage  domain.FileStorage
	localDir string
}

// NewModule selects S3 or local storage. publicURL is the externally
// reachable base of this server, used to build local file URLs.
func NewModule(ctx context.Context, cfg config.FileStorageConfig, publicURL string) (*Module, error) {
	var (
		storage  domain.FileStorage
		localDir string
	)

	if cfg.UseS3 {
		st, err := s3.NewS3Storage(ctx, s3.S3Config{
			BucketName:     cfg.S3BucketName,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			UseSSL:         cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		storage = st
	} else {
		st, err := local.NewLocalStorage(cfg.LocalPath, strings.TrimRight(publicURL, "/")+UploadsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		storage = st
		localDir = st.Dir()
	}

	return &Module{
		covers:   application.NewCoverService(storage),
		storage:  storage,
		localDir: localDir,
	}, nil
}

// Covers returns the cover store used by the catalog.
func (m *Module) Covers() *application.CoverService {
	return m.covers
}

// LocalDir reports the directory to serve under UploadsPath, if files are
// kept on local disk.
func (m *Module) LocalDir() (string, bool) {
	return m.localDir, m.localDir != ""
}
