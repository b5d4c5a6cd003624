package domain

import (
	"context"
	"io"
)

// FileStorage defines the interface for file storage operations.
// Implemented by S3/MinIO and the local filesystem.
type FileStorage interface {
	// UploadFile uploads a file with the given key and returns the public URL
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)

	// DeleteFile deletes a file by its key
	DeleteFile(ctx context.Context, key string) error

	// GetKeyFromURL extracts the storage key from a public URL
	GetKeyFromURL(url string) (string, error)
}
