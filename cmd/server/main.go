package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"pharmanet/internal/auth"
	"pharmanet/internal/cache"
	"pharmanet/internal/config"
	"pharmanet/internal/db"
	"pharmanet/internal/handler"
	"pharmanet/internal/model"
	"pharmanet/internal/repository"
	"pharmanet/internal/router"
	"pharmanet/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models. The catalog tables are populated by
	// cmd/seed; the server only ensures the schema exists.
	if err := gormDB.AutoMigrate(
		&model.Composition{},
		&model.Medicine{},
		&model.User{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	medicineRepo := repository.NewMedicineRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize services
	sessionService := auth.NewSessionService(cfg.SessionSecret)
	catalogService := service.NewCatalogService(medicineRepo, cacheClient)
	accountService := service.NewAccountService(userRepo)

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogService)
	accountHandler := handler.NewAccountHandler(accountService, sessionService)

	// Register routes
	if err := router.Register(e, cfg, sessionService, catalogHandler, accountHandler); err != nil {
		log.Fatalf("router init: %v", err)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
