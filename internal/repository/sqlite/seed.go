package sqlite

import (
	"context"
	"fmt"

	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
)

// InsertSnapshot writes every entity of snap in one transaction. Used by the
// seed command and tests; the editor app owns writes in normal operation.
func (db *DB) InsertSnapshot(ctx context.Context, snap *models.Snapshot) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range snap.Profiles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO profiles (id, user_id, name, created_at) VALUES (?, ?, ?, ?)`,
			p.ID, p.UserID, p.Name, p.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert profile %s: %w", p.ID, err)
		}
	}
	for _, p := range snap.Projects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, user_id, profile_id, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.UserID, p.ProfileID, p.Name, p.CreatedAt, p.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert project %s: %w", p.ID, err)
		}
	}
	for _, f := range snap.Folders {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO folders (id, project_id, name, sort_order, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			f.ID, f.ProjectID, f.Name, f.Order, f.CreatedAt, f.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert folder %s: %w", f.ID, err)
		}
	}
	for _, d := range snap.Documents {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (id, project_id, folder_id, name, content, word_count, sort_order, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.ProjectID, d.FolderID, d.Name, d.Content, d.WordCount, d.Order, d.CreatedAt, d.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert document %s: %w", d.ID, err)
		}
	}

	return tx.Commit()
}

// Reset deletes all rows, keeping the schema
func (db *DB) Reset(ctx context.Context) error {
	for _, table := range []string{"documents", "folders", "projects", "profiles"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
