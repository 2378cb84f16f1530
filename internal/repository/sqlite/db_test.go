package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func strPtr(s string) *string { return &s }

// seedNovel inserts one profile with a project, a folder and two documents,
// plus a legacy project without a profile
func seedNovel(t *testing.T, db *DB, userID string) *models.Snapshot {
	t.Helper()
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	profileID := uuid.NewString()
	projectID := uuid.NewString()
	legacyID := uuid.NewString()
	folderID := uuid.NewString()

	snap := &models.Snapshot{
		Profiles: []models.Profile{{ID: profileID, UserID: userID, Name: "Alex", CreatedAt: base}},
		Projects: []models.Project{
			{ID: projectID, UserID: userID, ProfileID: strPtr(profileID), Name: "My Novel", CreatedAt: base, UpdatedAt: base},
			{ID: legacyID, UserID: userID, Name: "Old Notes", CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)},
		},
		Folders: []models.Folder{
			{ID: folderID, ProjectID: projectID, Name: "Chapter 1!", Order: 2, CreatedAt: base, UpdatedAt: base},
		},
		Documents: []models.Document{
			{ID: uuid.NewString(), ProjectID: projectID, FolderID: strPtr(folderID), Name: "Scene A",
				Content: strPtr("<h1>Intro</h1>"), WordCount: 1, Order: 1, CreatedAt: base, UpdatedAt: base},
			{ID: uuid.NewString(), ProjectID: legacyID, Name: "Scratch",
				CreatedAt: base.Add(time.Minute), UpdatedAt: base.Add(time.Minute)},
		},
	}

	require.NoError(t, db.InsertSnapshot(context.Background(), snap))
	return snap
}

func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"profiles", "projects", "folders", "documents"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	// Idempotent
	require.NoError(t, db.Migrate(context.Background()))
}

func TestReset(t *testing.T) {
	db := NewTestDB(t)
	userID := uuid.NewString()
	seedNovel(t, db, userID)

	require.NoError(t, db.Reset(context.Background()))

	profiles, err := NewProfileRepository(db).ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, profiles)
}
