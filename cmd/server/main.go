package main

import (
	"context"
	"log"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	var repo repository.ResumesRepo
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewResumesPool(ctx)
		if err != nil {
			log.Fatalf("resumes DB not available: %v", err)
		}
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
		repo = repository.NewPostgresResumesRepo(pool)
	} else {
		log.Printf("warning: RESUME_DATABASE_URL not set, using in-memory store")
		repo = repository.NewMemoryResumesRepo()
	}

	app := fiber.New()
	h := httpadapter.NewHandler(repo)
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
