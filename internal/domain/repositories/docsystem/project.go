package docsystem

import (
	"context"

	"github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
)

// ProjectRepository defines read access to projects
type ProjectRepository interface {
	// ListByUser retrieves all projects owned by a user (with or without a profile),
	// ordered by created_at, id
	ListByUser(ctx context.Context, userID string) ([]docsystem.Project, error)
}
