package docsystem

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
	docsysRepo "github.com/FuFicFac/vibe-writer/internal/domain/repositories/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/repository/postgres"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *postgres.RepositoryConfig) docsysRepo.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ListByUser retrieves the folders of every live project the user owns
func (r *PostgresFolderRepository) ListByUser(ctx context.Context, userID string) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT f.id, f.project_id, f.name, f.sort_order, f.created_at, f.updated_at
		FROM %s f
		JOIN %s p ON p.id = f.project_id
		WHERE p.user_id = $1 AND p.deleted_at IS NULL AND f.deleted_at IS NULL
		ORDER BY f.created_at, f.id
	`, r.tables.Folders, r.tables.Projects)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, postgres.QueryError("list folders", err)
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(
			&folder.ID,
			&folder.ProjectID,
			&folder.Name,
			&folder.Order,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}
