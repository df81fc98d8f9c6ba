package minio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tripveda/agency-backend/internal/repository/ports"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// Storage adapts a MinIO client to the ObjectStorage port. Upload returns
// the public URL of the stored object.
type Storage struct {
	client    *minio.Client
	publicURL string
}

func NewStorage(client *minio.Client, publicURL string) *Storage {
	return &Storage{
		client:    client,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *Storage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio: put object %s/%s: %w", bucket, objectName, err)
	}
	return s.PublicURL(bucket, objectName), nil
}

func (s *Storage) PublicURL(bucket, objectName string) string {
	base := s.publicURL
	if base == "" {
		base = s.client.EndpointURL().Scheme + "://" + s.client.EndpointURL().Host
	}
	return fmt.Sprintf("%s/%s/%s", base, bucket, objectName)
}

var _ ports.ObjectStorage = (*Storage)(nil)
