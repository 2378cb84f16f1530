package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
)

// InsertSnapshot writes every entity of snap in one transaction, as a single
// batch. Used by the seed command; the editor app owns writes otherwise.
func InsertSnapshot(ctx context.Context, pool *pgxpool.Pool, tables *TableNames, snap *models.Snapshot) error {
	batch := &pgx.Batch{}

	for _, p := range snap.Profiles {
		batch.Queue(fmt.Sprintf(
			`INSERT INTO %s (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`, tables.Profiles),
			p.ID, p.UserID, p.Name, p.CreatedAt)
	}
	for _, p := range snap.Projects {
		batch.Queue(fmt.Sprintf(
			`INSERT INTO %s (id, user_id, profile_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`, tables.Projects),
			p.ID, p.UserID, p.ProfileID, p.Name, p.CreatedAt, p.UpdatedAt)
	}
	for _, f := range snap.Folders {
		batch.Queue(fmt.Sprintf(
			`INSERT INTO %s (id, project_id, name, sort_order, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`, tables.Folders),
			f.ID, f.ProjectID, f.Name, f.Order, f.CreatedAt, f.UpdatedAt)
	}
	for _, d := range snap.Documents {
		batch.Queue(fmt.Sprintf(
			`INSERT INTO %s (id, project_id, folder_id, name, content, word_count, sort_order, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, tables.Documents),
			d.ID, d.ProjectID, d.FolderID, d.Name, d.Content, d.WordCount, d.Order, d.CreatedAt, d.UpdatedAt)
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
		return nil
	})
}

// DropTables drops the backup tables for one prefix
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	_, err := pool.Exec(ctx, fmt.Sprintf(
		"DROP TABLE IF EXISTS %s, %s, %s, %s CASCADE",
		tables.Documents, tables.Folders, tables.Projects, tables.Profiles,
	))
	if err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return nil
}
