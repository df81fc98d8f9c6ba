package media

import (
	"bytes"
	"fmt"
	"image"
	"mime"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var extensionByType = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// Inspect validates that data is a decodable image and reports its content
// type and dimensions. The declared type and file name are hints only; the
// decoded format wins when they disagree.
func Inspect(data []byte, declaredType, fileName string) (contentType string, width, height int, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, fmt.Errorf("media: decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", 0, 0, fmt.Errorf("media: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	contentType = "image/" + format
	if format == "jpeg" {
		contentType = "image/jpeg"
	}
	if _, known := extensionByType[contentType]; !known {
		return "", 0, 0, fmt.Errorf("media: unsupported image format %s", format)
	}

	return contentType, cfg.Width, cfg.Height, nil
}

// Extension picks a file extension for a stored object: the original file
// extension when present, else one mapped from the content type, else "jpg".
func Extension(fileName, contentType string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext != "" {
		return ext
	}
	if mapped, ok := extensionByType[NormalizeContentType(contentType, fileName)]; ok {
		return mapped
	}
	return "jpg"
}

// NormalizeContentType resolves a usable mime type from the declared value
// or, failing that, the file name.
func NormalizeContentType(value, fileName string) string {
	ct := strings.ToLower(strings.TrimSpace(value))
	if ct == "image/jpg" {
		return "image/jpeg"
	}
	if ct != "" {
		return ct
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	}
	if ext != "" {
		if mt := mime.TypeByExtension(ext); mt != "" {
			return strings.ToLower(mt)
		}
	}
	return "image/jpeg"
}
