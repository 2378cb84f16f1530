package docsystem

import (
	"context"

	"github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
)

// DocumentRepository defines read access to documents
type DocumentRepository interface {
	// ListByUser retrieves every document (with content) in the user's projects,
	// ordered by created_at, id
	ListByUser(ctx context.Context, userID string) ([]docsystem.Document, error)
}
