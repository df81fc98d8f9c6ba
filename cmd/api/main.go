package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/tripveda/agency-backend/internal/config"
	"github.com/tripveda/agency-backend/internal/logging"
	miniostore "github.com/tripveda/agency-backend/internal/repository/minio"
	"github.com/tripveda/agency-backend/internal/repository/postgres"
	"github.com/tripveda/agency-backend/internal/service"
	transport "github.com/tripveda/agency-backend/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogTCPAddr != "" {
		mirror, err := logging.NewMirrorWriter(cfg.LogTCPAddr)
		if err != nil {
			log.Printf("log mirror disabled: %v", err)
		} else {
			defer mirror.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, mirror))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	access, err := postgres.CheckWriteAccess(ctx, db)
	cancel()
	if err != nil {
		log.Fatalf("probe database privileges: %v", err)
	}
	if !access.Writable {
		log.Printf("WARNING: role %q cannot write catalog tables, admin mutations will be refused", access.Role)
	}

	minioClient, err := miniostore.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.Fatalf("connect object storage: %v", err)
	}
	storage := miniostore.NewStorage(minioClient, cfg.MinIOPublicURL)

	destinations := postgres.NewDestinationRepo(db)
	hotels := postgres.NewHotelRepo(db)
	packages := postgres.NewPackageRepo(db)
	leads := postgres.NewLeadRepo(db)
	settings := postgres.NewSettingsRepo(db)

	catalog := service.NewCatalogService(destinations, packages, hotels, settings)
	admin := service.NewAdminService(destinations, packages, hotels, leads, settings)
	leadService := service.NewLeadService(leads, destinations, packages, cfg.WhatsappNumber)
	uploads := service.NewUploadService(storage, cfg.StorageBucket, cfg.UploadMaxBytes)

	e := transport.NewRouter(cfg.AllowOrigins)
	guards := transport.Guards{
		AdminKey: transport.RequireAdminKey(cfg.AdminKey),
		Write: transport.RequireWriteAccess(transport.WriteAccess{
			Role:     access.Role,
			Writable: access.Writable,
		}),
	}

	transport.RegisterDestinations(e, catalog, admin, guards)
	transport.RegisterPackages(e, catalog, admin, guards)
	transport.RegisterHotels(e, catalog, admin, guards)
	transport.RegisterLeads(e, leadService, admin, guards)
	transport.RegisterSettings(e, catalog, admin, guards)
	transport.RegisterUploads(e, uploads, guards)
	transport.RegisterAdminVerify(e, guards)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
