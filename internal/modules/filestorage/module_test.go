package filestorage

import (
	"context"
	"testing"

	"github.com/juliocloud/s206-projeto-final/internal/shared/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModule_Local(t *testing.T) {
	dir := t.TempDir()
	m, err := NewModule(context.Background(), config.FileStorageConfig{LocalPath: dir}, "http://localhost:8080/")
	require.NoError(t, err)
	require.NotNil(t, m.Covers())

	got, ok := m.LocalDir()
	assert.True(t, ok)
	assert.Equal(t, dir, got)

	key, err := m.storage.GetKeyFromURL("http://localhost:8080/uploads/covers/1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "covers/1.jpg", key)
}

func TestNewModule_S3(t *testing.T) {
	m, err := NewModule(context.Background(), config.FileStorageConfig{
		UseS3: true, S3BucketName: "b", S3Region: "us-east-1", S3Endpoint: "localhost:9000",
	}, "http://localhost:8080")
	require.NoError(t, err)

	_, ok := m.LocalDir()
	assert.False(t, ok)

	_, err = NewModule(context.Background(), config.FileStorageConfig{UseS3: true, S3BucketName: ""}, "")
	require.Error(t, err)
}
