package docsystem

import (
	"context"

	"github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
)

// ProfileRepository defines read access to profiles
type ProfileRepository interface {
	// ListByUser retrieves all profiles owned by a user, ordered by created_at, id.
	// The order is significant: the first profile adopts legacy projects.
	ListByUser(ctx context.Context, userID string) ([]docsystem.Profile, error)
}
