package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/juliocloud/s206-projeto-final/internal/modules/filestorage/domain"
)

// LocalStorage implements FileStorage on the local filesystem. Files are
// served back under baseURL.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a new local filesystem storage
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Dir is the directory files are written to.
func (l *LocalStorage) Dir() string {
	return l.basePath
}

// path resolves key below basePath and rejects keys that escape it.
func (l *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" {
		return "", domain.ErrInvalidKey
	}
	return filepath.Join(l.basePath, clean), nil
}

// UploadFile uploads a file to local filesystem
func (l *LocalStorage) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	fullPath, err := l.path(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, file); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/%s", l.baseURL, key), nil
}

// DeleteFile deletes a file from local filesystem
func (l *LocalStorage) DeleteFile(ctx context.Context, key string) error {
	fullPath, err := l.path(key)
	if err != nil {
		return err
	}
	return os.Remove(fullPath)
}

// GetKeyFromURL extracts the key from a public URL
func (l *LocalStorage) GetKeyFromURL(url string) (string, error) {
	prefix := l.baseURL + "/"
	if key, ok := strings.CutPrefix(url, prefix); ok && key != "" {
		return key, nil
	}
	return "", fmt.Errorf("url does not match expected format: %s", url)
}
