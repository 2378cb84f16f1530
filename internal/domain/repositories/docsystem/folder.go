package docsystem

import (
	"context"

	"github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
)

// FolderRepository defines read access to folders
type FolderRepository interface {
	// ListByUser retrieves every folder in the user's projects, ordered by created_at, id
	ListByUser(ctx context.Context, userID string) ([]docsystem.Folder, error)
}
