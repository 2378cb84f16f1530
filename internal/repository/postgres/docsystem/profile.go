package docsystem

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
	docsysRepo "github.com/FuFicFac/vibe-writer/internal/domain/repositories/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/repository/postgres"
)

// PostgresProfileRepository implements the ProfileRepository interface
type PostgresProfileRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(config *postgres.RepositoryConfig) docsysRepo.ProfileRepository {
	return &PostgresProfileRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ListByUser retrieves a user's profiles, oldest first
func (r *PostgresProfileRepository) ListByUser(ctx context.Context, userID string) ([]models.Profile, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, created_at
		FROM %s
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at, id
	`, r.tables.Profiles)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, postgres.QueryError("list profiles", err)
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		var profile models.Profile
		if err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.Name,
			&profile.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}

	return profiles, nil
}
