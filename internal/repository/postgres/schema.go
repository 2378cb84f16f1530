package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables a backup reads, if they are missing.
// The editor app owns writes; this lets a fresh database (tests, local
// development) be exported without running the app's migrations.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id    UUID NOT NULL,
			name       TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS %[1]s_user_idx ON %[1]s (user_id);

		CREATE TABLE IF NOT EXISTS %[2]s (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id    UUID NOT NULL,
			profile_id UUID REFERENCES %[1]s (id) ON DELETE SET NULL,
			name       TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS %[2]s_user_idx ON %[2]s (user_id);

		CREATE TABLE IF NOT EXISTS %[3]s (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			project_id UUID NOT NULL REFERENCES %[2]s (id) ON DELETE CASCADE,
			name       TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS %[3]s_project_idx ON %[3]s (project_id);

		CREATE TABLE IF NOT EXISTS %[4]s (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			project_id UUID NOT NULL REFERENCES %[2]s (id) ON DELETE CASCADE,
			folder_id  UUID REFERENCES %[3]s (id) ON DELETE SET NULL,
			name       TEXT NOT NULL,
			content    TEXT,
			word_count INTEGER NOT NULL DEFAULT 0,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS %[4]s_project_idx ON %[4]s (project_id);
	`, tables.Profiles, tables.Projects, tables.Folders, tables.Documents)

	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
