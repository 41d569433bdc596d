package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"room-planner/internal/common/config"
	"room-planner/internal/common/middleware"
	"room-planner/internal/planner/catalog"
	"room-planner/internal/planner/handlers"
	"room-planner/internal/planner/models"
	"room-planner/internal/planner/repository"
	"room-planner/internal/planner/scene"
	"room-planner/internal/planner/service"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Room Planner Service
// ============================================================

func main() {
	cfg := config.Load()

	db, err := repository.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}
	log.Printf("[DB] Export archive at %s", cfg.DBPath)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("[CATALOG] %d items, %d templates", len(cat.Entries()), len(cat.Templates()))

	settings := models.DefaultSettings()
	settings.RoomSize = cfg.RoomSize
	settings.GridSnap = cfg.GridSnap
	settings.CollisionDetection = cfg.CollisionDetection

	projects := service.NewProjects(func() *scene.Store {
		return scene.New(scene.Options{
			Catalog:      cat,
			Settings:     settings,
			HistoryLimit: cfg.HistoryLimit,
		})
	})
	plannerHandler := handlers.NewPlannerHandler(projects, repo, cat, cfg.PreviewSize)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Room Planner",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS(cfg.CORSOrigins))

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe(repo))
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// Docs Routes
	// ============================================================

	app.Get("/docs", handlers.SwaggerUI)
	app.Get("/docs/openapi.yaml", handlers.SwaggerSpec)

	// ============================================================
	// Planner Routes
	// ============================================================

	plannerHandler.Register(app.Group("/api/v1"))

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Room Planner on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
