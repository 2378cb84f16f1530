package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/FuFicFac/vibe-writer/internal/config"
	"github.com/FuFicFac/vibe-writer/internal/repository"
	"github.com/FuFicFac/vibe-writer/internal/seed"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Remove all backup data before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up the schema, don't insert demo data")
	userID := flag.String("user", "", "Owner of the demo profiles (default: DEV_USER_ID)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: --drop-tables is not allowed in production")
	}

	logger := config.NewLogger(cfg.Environment, os.Stdout)

	owner := *userID
	if owner == "" {
		owner = cfg.DevUserID
	}
	if owner == "" && !*schemaOnly {
		log.Fatalf("No owner: pass --user or set DEV_USER_ID")
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	if *dropTables {
		logger.Info("clearing backup data", "store", store.Driver, "table_prefix", cfg.TablePrefix)
		if err := store.Reset(ctx); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
	}

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to set up schema: %v", err)
	}
	logger.Info("schema ready", "store", store.Driver)

	if *schemaOnly {
		return
	}

	snap := seed.DemoSnapshot(owner, time.Now().UTC())
	if err := store.Insert(ctx, snap); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	logger.Info("demo data seeded",
		"user_id", owner,
		"profiles", len(snap.Profiles),
		"projects", len(snap.Projects),
		"folders", len(snap.Folders),
		"documents", len(snap.Documents),
	)
	for _, p := range snap.Profiles {
		logger.Info("profile", "id", p.ID, "name", p.Name)
	}
}
