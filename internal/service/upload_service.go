package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripveda/agency-backend/internal/media"
	"github.com/tripveda/agency-backend/internal/repository/ports"
)

var (
	ErrUploadMissing  = errors.New("data_url or base64 is required.")
	ErrUploadInvalid  = errors.New("Invalid base64 payload.")
	ErrUploadEmpty    = errors.New("Uploaded file is empty.")
	ErrUploadTooLarge = errors.New("Image too large. Max 8MB.")
	ErrUploadNotImage = errors.New("Uploaded file is not a valid image.")
)

// UploadService stores admin-supplied images in object storage.
type UploadService struct {
	storage       ports.ObjectStorage
	defaultBucket string
	maxBytes      int64
}

func NewUploadService(storage ports.ObjectStorage, defaultBucket string, maxBytes int64) *UploadService {
	return &UploadService{
		storage:       storage,
		defaultBucket: defaultBucket,
		maxBytes:      maxBytes,
	}
}

type UploadInput struct {
	DataURL     string `json:"data_url"`
	Base64      string `json:"base64"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Folder      string `json:"folder"`
	Bucket      string `json:"bucket"`
}

type StoredImage struct {
	Bucket    string  `json:"bucket"`
	Path      string  `json:"path"`
	PublicURL *string `json:"public_url"`
}

var dataURLPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

func (s *UploadService) Store(ctx context.Context, in UploadInput) (*StoredImage, error) {
	encoded := in.Base64
	contentType := in.ContentType
	if in.DataURL != "" {
		matched := dataURLPattern.FindStringSubmatch(in.DataURL)
		if matched != nil {
			contentType = matched[1]
			encoded = matched[2]
		}
	}
	if encoded == "" {
		return nil, ErrUploadMissing
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrUploadInvalid
	}
	if len(data) == 0 {
		return nil, ErrUploadEmpty
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrUploadTooLarge
	}

	sniffedType, _, _, err := media.Inspect(data, contentType, in.FileName)
	if err != nil {
		return nil, ErrUploadNotImage
	}

	folder := sanitizeSegment(in.Folder, "general")
	bucket := sanitizeSegment(in.Bucket, s.defaultBucket)
	extension := media.Extension(in.FileName, sniffedType)

	objectName := fmt.Sprintf("%s/%d-%s.%s", folder, time.Now().UnixMilli(), shortID(), extension)

	publicURL, err := s.storage.Upload(ctx, bucket, objectName, sniffedType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	stored := &StoredImage{Bucket: bucket, Path: objectName}
	if publicURL != "" {
		stored.PublicURL = &publicURL
	}
	return stored, nil
}

var (
	segmentInvalid  = regexp.MustCompile(`[^a-z0-9/_-]`)
	segmentDashes   = regexp.MustCompile(`-{2,}`)
	segmentTrimEnds = regexp.MustCompile(`^[-/]+|[-/]+$`)
)

func sanitizeSegment(value, fallback string) string {
	cleaned := strings.ToLower(value)
	cleaned = segmentInvalid.ReplaceAllString(cleaned, "-")
	cleaned = segmentDashes.ReplaceAllString(cleaned, "-")
	cleaned = segmentTrimEnds.ReplaceAllString(cleaned, "")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
