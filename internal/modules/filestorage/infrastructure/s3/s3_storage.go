package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Stored objects are never overwritten; every cover gets a fresh key.
const cacheControl = "public, max-age=31536000, immutable"

// S3Config holds configuration for S3/MinIO storage
type S3Config struct {
	BucketName     string
	Region         string
	Endpoint       string // Internal endpoint (e.g., minio:9000)
	PublicEndpoint string // Host covers are served from (e.g., localhost:9000)
	AccessKey      string
	SecretKey      string
	UseSSL         bool
}

// S3Storage implements FileStorage interface using AWS S3 or MinIO
type S3Storage struct {
	client *s3.Client
	config S3Config
}

// NewS3Storage creates a new S3 storage implementation
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.Endpoint != "" {
		// MinIO / LocalStack use static credentials.
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(withScheme(cfg.Endpoint, cfg.UseSSL))
			o.UsePathStyle = true // Required for MinIO
		}
	})

	return &S3Storage{client: client, config: cfg}, nil
}

// UploadFile uploads a file to S3 and returns the public URL
func (s *S3Storage) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.config.BucketName),
		Key:          aws.String(key),
		Body:         file,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(cacheControl),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}
	return s.publicBase() + key, nil
}

// DeleteFile deletes a file from S3
func (s *S3Storage) DeleteFile(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from s3: %w", err)
	}
	return nil
}

// GetKeyFromURL extracts the storage key from a URL produced by UploadFile
// or from one addressing the internal endpoint.
func (s *S3Storage) GetKeyFromURL(fileURL string) (string, error) {
	prefixes := []string{s.publicBase()}
	if s.config.Endpoint != "" {
		prefixes = append(prefixes, s.pathStyleBase(s.config.Endpoint))
	}

	for _, prefix := range prefixes {
		if key, ok := strings.CutPrefix(fileURL, prefix); ok && key != "" {
			return key, nil
		}
	}
	return "", fmt.Errorf("url does not match expected format: %s", fileURL)
}

// publicBase is the URL prefix that, followed by a key, addresses an object.
func (s *S3Storage) publicBase() string {
	switch {
	case s.config.PublicEndpoint != "":
		return s.pathStyleBase(s.config.PublicEndpoint)
	case s.config.Endpoint != "":
		return s.pathStyleBase(s.config.Endpoint)
	default:
		// https://bucket.s3.region.amazonaws.com/folder/file.ext
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.config.BucketName, s.config.Region)
	}
}

func (s *S3Storage) pathStyleBase(endpoint string) string {
	return fmt.Sprintf("%s/%s/", strings.TrimRight(withScheme(endpoint, s.config.UseSSL), "/"), s.config.BucketName)
}

func withScheme(endpoint string, useSSL bool) string {
	if hasHTTPPrefix(endpoint) {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

// hasHTTPPrefix checks if a string has http:// or https:// prefix
func hasHTTPPrefix(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
