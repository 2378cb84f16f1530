// Package repository selects and opens the configured backing store.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FuFicFac/vibe-writer/internal/config"
	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/domain/repositories"
	"github.com/FuFicFac/vibe-writer/internal/repository/postgres"
	postgresDocsys "github.com/FuFicFac/vibe-writer/internal/repository/postgres/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/repository/sqlite"
	serviceDocsys "github.com/FuFicFac/vibe-writer/internal/service/docsystem"
)

// Store is an opened backing store
type Store struct {
	Driver    string
	TxManager repositories.TransactionManager
	Repos     serviceDocsys.BackupRepositories

	ensureSchema func(ctx context.Context) error
	insert       func(ctx context.Context, snap *models.Snapshot) error
	reset        func(ctx context.Context) error
	close        func()
}

// Open connects to the store named by cfg.StoreDriver
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		return openSQLite(ctx, cfg, logger)
	case config.StoreDriverPostgres:
		return openPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if cfg.SupabaseDBURL == "" {
		return nil, fmt.Errorf("SUPABASE_DB_URL is required for the postgres store")
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		return nil, err
	}

	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}

	logger.Info("database connected",
		"driver", config.StoreDriverPostgres,
		"table_prefix", cfg.TablePrefix,
	)

	return &Store{
		Driver:    config.StoreDriverPostgres,
		TxManager: postgres.NewTransactionManager(pool, logger),
		Repos: serviceDocsys.BackupRepositories{
			Profiles:  postgresDocsys.NewProfileRepository(repoConfig),
			Projects:  postgresDocsys.NewProjectRepository(repoConfig),
			Folders:   postgresDocsys.NewFolderRepository(repoConfig),
			Documents: postgresDocsys.NewDocumentRepository(repoConfig),
		},
		ensureSchema: func(ctx context.Context) error {
			return postgres.EnsureSchema(ctx, pool, tables)
		},
		insert: func(ctx context.Context, snap *models.Snapshot) error {
			return postgres.InsertSnapshot(ctx, pool, tables, snap)
		},
		reset: func(ctx context.Context) error {
			if err := postgres.DropTables(ctx, pool, tables); err != nil {
				return err
			}
			return postgres.EnsureSchema(ctx, pool, tables)
		},
		close: pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	logger.Info("database connected",
		"driver", config.StoreDriverSQLite,
		"path", cfg.SQLitePath,
	)

	return &Store{
		Driver:    config.StoreDriverSQLite,
		TxManager: sqlite.NewTransactionManager(db),
		Repos: serviceDocsys.BackupRepositories{
			Profiles:  sqlite.NewProfileRepository(db),
			Projects:  sqlite.NewProjectRepository(db),
			Folders:   sqlite.NewFolderRepository(db),
			Documents: sqlite.NewDocumentRepository(db),
		},
		ensureSchema: db.Migrate,
		insert:       db.InsertSnapshot,
		reset:        db.Reset,
		close:        func() { _ = db.Close() },
	}, nil
}

// EnsureSchema creates missing tables
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.ensureSchema(ctx)
}

// Insert writes a snapshot's entities (seeding)
func (s *Store) Insert(ctx context.Context, snap *models.Snapshot) error {
	return s.insert(ctx, snap)
}

// Reset removes all data, keeping an empty schema
func (s *Store) Reset(ctx context.Context) error {
	return s.reset(ctx)
}

// Close releases the store's connections
func (s *Store) Close() {
	s.close()
}
