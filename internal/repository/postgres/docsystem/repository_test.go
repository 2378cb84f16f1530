package docsystem

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/repository/postgres"
)

// newTestConfig connects to TEST_DATABASE_URL and creates a throwaway set
// of prefixed tables, dropped when the test ends
func newTestConfig(t *testing.T) *postgres.RepositoryConfig {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, dbURL)
	require.NoError(t, err)

	prefix := "test_" + uuid.NewString()[:8] + "_"
	tables := postgres.NewTableNames(prefix)
	require.NoError(t, postgres.EnsureSchema(ctx, pool, tables))

	t.Cleanup(func() {
		_ = postgres.DropTables(context.Background(), pool, tables)
		pool.Close()
	})

	return &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRepositories_ListByUser(t *testing.T) {
	cfg := newTestConfig(t)
	ctx := context.Background()
	userID := uuid.NewString()
	otherUser := uuid.NewString()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	exec := func(query string, args ...any) {
		t.Helper()
		_, err := cfg.Pool.Exec(ctx, query, args...)
		require.NoError(t, err)
	}

	profileID := uuid.NewString()
	exec(fmt.Sprintf(`INSERT INTO %s (id, user_id, name, created_at) VALUES ($1, $2, 'Alex', $3)`,
		cfg.Tables.Profiles), profileID, userID, base)
	exec(fmt.Sprintf(`INSERT INTO %s (id, user_id, name, created_at) VALUES ($1, $2, 'Other', $3)`,
		cfg.Tables.Profiles), uuid.NewString(), otherUser, base)

	projectID, legacyID, deletedID := uuid.NewString(), uuid.NewString(), uuid.NewString()
	exec(fmt.Sprintf(`INSERT INTO %s (id, user_id, profile_id, name, created_at) VALUES ($1, $2, $3, 'My Novel', $4)`,
		cfg.Tables.Projects), projectID, userID, profileID, base)
	exec(fmt.Sprintf(`INSERT INTO %s (id, user_id, name, created_at) VALUES ($1, $2, 'Legacy', $3)`,
		cfg.Tables.Projects), legacyID, userID, base.Add(time.Hour))
	exec(fmt.Sprintf(`INSERT INTO %s (id, user_id, name, created_at, deleted_at) VALUES ($1, $2, 'Gone', $3, now())`,
		cfg.Tables.Projects), deletedID, userID, base.Add(2*time.Hour))

	folderID := uuid.NewString()
	exec(fmt.Sprintf(`INSERT INTO %s (id, project_id, name, sort_order) VALUES ($1, $2, 'Chapter 1', 3)`,
		cfg.Tables.Folders), folderID, projectID)

	exec(fmt.Sprintf(`INSERT INTO %s (project_id, folder_id, name, content, sort_order, created_at) VALUES ($1, $2, 'Scene A', '<h1>Intro</h1>', 1, $3)`,
		cfg.Tables.Documents), projectID, folderID, base)
	exec(fmt.Sprintf(`INSERT INTO %s (project_id, name, created_at) VALUES ($1, 'Notes', $2)`,
		cfg.Tables.Documents), projectID, base.Add(time.Minute))
	exec(fmt.Sprintf(`INSERT INTO %s (project_id, name) VALUES ($1, 'Hidden')`,
		cfg.Tables.Documents), deletedID)

	txm := postgres.NewTransactionManager(cfg.Pool, cfg.Logger)
	snap := &models.Snapshot{}
	err := txm.ReadTx(ctx, func(ctx context.Context) error {
		var err error
		if snap.Profiles, err = NewProfileRepository(cfg).ListByUser(ctx, userID); err != nil {
			return err
		}
		if snap.Projects, err = NewProjectRepository(cfg).ListByUser(ctx, userID); err != nil {
			return err
		}
		if snap.Folders, err = NewFolderRepository(cfg).ListByUser(ctx, userID); err != nil {
			return err
		}
		snap.Documents, err = NewDocumentRepository(cfg).ListByUser(ctx, userID)
		return err
	})
	require.NoError(t, err)

	require.Len(t, snap.Profiles, 1)
	assert.Equal(t, "Alex", snap.Profiles[0].Name)

	require.Len(t, snap.Projects, 2)
	assert.Equal(t, projectID, snap.Projects[0].ID)
	require.NotNil(t, snap.Projects[0].ProfileID)
	assert.Equal(t, profileID, *snap.Projects[0].ProfileID)
	assert.False(t, snap.Projects[1].HasProfile())

	require.Len(t, snap.Folders, 1)
	assert.Equal(t, 3, snap.Folders[0].Order)

	require.Len(t, snap.Documents, 2)
	assert.Equal(t, "Scene A", snap.Documents[0].Name)
	require.NotNil(t, snap.Documents[0].Content)
	assert.Equal(t, "<h1>Intro</h1>", *snap.Documents[0].Content)
	assert.True(t, snap.Documents[1].IsRoot())
	assert.Nil(t, snap.Documents[1].Content)
}

func TestRepositories_MissingSchema(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Tables = postgres.NewTableNames("missing_" + uuid.NewString()[:8] + "_")

	_, err := NewProfileRepository(cfg).ListByUser(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, postgres.ErrSchemaMissing)
}
