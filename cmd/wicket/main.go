package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/fortuna/wicket/internal/config"
	"github.com/fortuna/wicket/internal/ingest"
	"github.com/fortuna/wicket/internal/store"
	"github.com/fortuna/wicket/internal/store/repository"
)

const (
	serviceName    = "wicket"
	serviceVersion = "1.0.0"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	log.Printf("Starting %s v%s - Cricket Match Warehouse", serviceName, serviceVersion)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Bail out before touching the store when there is nothing to load.
	if _, err := os.Stat(cfg.InputFile); err != nil {
		log.Fatalf("Input file not found: %s", cfg.InputFile)
	}

	db, err := store.NewDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open warehouse database: %v", err)
	}
	defer db.Close()

	log.Printf("✓ Connected to warehouse database at %s", cfg.DatabasePath)

	ctx := context.Background()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create warehouse schema: %v", err)
	}

	loader := ingest.NewLoader(db)
	result, err := loader.LoadFile(ctx, cfg.InputFile)
	if err != nil {
		log.Fatalf("Load failed: %v", err)
	}

	summary := repository.NewSummaryRepository(db.DB())
	counts, err := summary.TableCounts(ctx)
	if err != nil {
		log.Fatalf("Failed to read warehouse summary: %v", err)
	}

	log.Println("Data warehouse summary:")
	for _, c := range counts {
		log.Printf("  %-20s %d", c.Label, c.Count)
	}

	log.Printf("✓ Data warehouse ready (loaded %d, skipped %d)", result.Loaded, result.Skipped)
}
