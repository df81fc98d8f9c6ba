package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	AdminKey       string
	WhatsappNumber string
	AllowOrigins   []string
	LogTCPAddr     string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOUseSSL    bool
	MinIOPublicURL string
	StorageBucket  string

	UploadMaxBytes int64
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	uploadMax := int64(8 * 1024 * 1024)
	if v, err := strconv.ParseInt(getenv("UPLOAD_MAX_BYTES", "8388608"), 10, 64); err == nil && v > 0 {
		uploadMax = v
	}

	return Config{
		Port:           getenv("PORT", "4000"),
		DatabaseURL:    must("DATABASE_URL"),
		AdminKey:       getenv("ADMIN_PANEL_KEY", ""),
		WhatsappNumber: getenv("WHATSAPP_NUMBER", ""),
		AllowOrigins:   splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogTCPAddr:     getenv("LOG_TCP_ADDR", ""),
		MinIOEndpoint:  must("MINIO_ENDPOINT"),
		MinIOAccessKey: must("MINIO_ACCESS_KEY"),
		MinIOSecretKey: must("MINIO_SECRET_KEY"),
		MinIOUseSSL:    getenv("MINIO_USE_SSL", "false") == "true",
		MinIOPublicURL: getenv("MINIO_PUBLIC_URL", ""),
		StorageBucket:  getenv("STORAGE_BUCKET", "agency-images"),
		UploadMaxBytes: uploadMax,
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
