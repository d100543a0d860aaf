package main

import (
	"context"
	"log"

	"pharmanet/internal/config"
	"pharmanet/internal/db"
	"pharmanet/internal/model"
	"pharmanet/internal/repository"
	"pharmanet/internal/service"
)

func main() {
	log.Println("Starting catalog seed...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Rebuild the catalog from scratch so the seed stays idempotent.
	// Medicines goes first because of the foreign key on compositions.
	for _, table := range []interface{}{&model.Medicine{}, &model.Composition{}} {
		if err := gormDB.Migrator().DropTable(table); err != nil {
			log.Printf("Warning: failed to drop table (may not exist): %v", err)
		}
	}
	if err := gormDB.AutoMigrate(&model.Composition{}, &model.Medicine{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Catalog schema recreated")

	loader := service.NewCatalogLoader(
		repository.NewMedicineRepository(gormDB),
		repository.NewCompositionRepository(gormDB),
		cfg.StaticDir,
	)

	inserted, err := loader.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Medicines inserted: %d", inserted)
}
