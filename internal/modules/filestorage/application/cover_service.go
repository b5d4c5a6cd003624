package application

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/juliocloud/s206-projeto-final/internal/modules/filestorage/domain"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
)

const (
	CoverSize    = 600
	coverQuality = 80
	coverFolder  = "covers"
)

// CoverService normalizes uploaded album art and stores it.
type CoverService struct {
	storage domain.FileStorage
}

func NewCoverService(storage domain.FileStorage) *CoverService {
	return &CoverService{storage: storage}
}

// StoreCover accepts a JPEG or PNG, scales it to fit within CoverSize
// pixels and stores it as a JPEG. It returns the public URL.
func (s *CoverService) StoreCover(ctx context.Context, albumID int64, file io.Reader) (string, error) {
	raw, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read cover: %w", err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || (format != "jpeg" && format != "png") {
		return "", domain.ErrInvalidImage
	}

	src, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return "", domain.ErrInvalidImage.Wrap(err)
	}

	dst := imaging.Fit(src, CoverSize, CoverSize, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, dst, imaging.JPEG, imaging.JPEGQuality(coverQuality)); err != nil {
		return "", fmt.Errorf("encode cover: %w", err)
	}

	key := fmt.Sprintf("%s/%d-%s.jpg", coverFolder, albumID, uuid.New().String())
	url, err := s.storage.UploadFile(ctx, key, buf, "image/jpeg")
	if err != nil {
		return "", err
	}

	logging.Ctx(ctx).Info().Int64("album_id", albumID).Str("key", key).Msg("cover stored")
	return url, nil
}

// RemoveCover deletes a cover previously returned by StoreCover.
func (s *CoverService) RemoveCover(ctx context.Context, url string) error {
	key, err := s.storage.GetKeyFromURL(url)
	if err != nil {
		return err
	}
	return s.storage.DeleteFile(ctx, key)
}
