package docsystem

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
	docsysRepo "github.com/FuFicFac/vibe-writer/internal/domain/repositories/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/repository/postgres"
)

// PostgresDocumentRepository implements the DocumentRepository interface
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *postgres.RepositoryConfig) docsysRepo.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ListByUser retrieves every live document in the user's live projects,
// content included. Documents whose folder was soft-deleted are returned
// with their folder_id; the archive builder treats them as orphans.
func (r *PostgresDocumentRepository) ListByUser(ctx context.Context, userID string) ([]models.Document, error) {
	query := fmt.Sprintf(`
		SELECT d.id, d.project_id, d.folder_id, d.name, d.content, d.word_count,
		       d.sort_order, d.created_at, d.updated_at
		FROM %s d
		JOIN %s p ON p.id = d.project_id
		WHERE p.user_id = $1 AND p.deleted_at IS NULL AND d.deleted_at IS NULL
		ORDER BY d.created_at, d.id
	`, r.tables.Documents, r.tables.Projects)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, postgres.QueryError("list documents", err)
	}
	defer rows.Close()

	documents := []models.Document{}
	for rows.Next() {
		var doc models.Document
		if err := rows.Scan(
			&doc.ID,
			&doc.ProjectID,
			&doc.FolderID,
			&doc.Name,
			&doc.Content,
			&doc.WordCount,
			&doc.Order,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return documents, nil
}
