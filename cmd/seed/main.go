package main

import (
	"context"
	"log"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/mevans2120/mm-ec-poc/internal/catalog/sanity"
	"github.com/mevans2120/mm-ec-poc/internal/config"
	"github.com/mevans2120/mm-ec-poc/internal/seed"
)

// One-shot catalog seeding. Safe to re-run: every document id is derived from
// its slug, so repeats replace rather than duplicate.
func main() {
	cfg, err := config.LoadSeed()
	if err != nil {
		// Exits non-zero; a missing write token must not look like success.
		log.Fatalf("Failed to load seed config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	client := sanity.NewClient(cfg.SanityProjectID, cfg.SanityDataset, cfg.SanityAPIVersion, cfg.SanityAPIToken)
	seeder := seed.NewSeeder(client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seeder.Run(ctx); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("done")
}
