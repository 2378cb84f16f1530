// Package seed builds sample data for local development and demos.
package seed

import (
	"time"

	"github.com/google/uuid"

	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
)

// DemoSnapshot returns two profiles for userID. The first owns a novel with
// chapters, root notes, an empty folder and a legacy project without a
// profile; the second has no projects.
func DemoSnapshot(userID string, now time.Time) *models.Snapshot {
	at := func(minutes int) time.Time { return now.Add(time.Duration(minutes) * time.Minute) }
	ptr := func(s string) *string { return &s }

	writer := uuid.NewString()
	poet := uuid.NewString()
	novel := uuid.NewString()
	legacy := uuid.NewString()
	ch1 := uuid.NewString()
	ch2 := uuid.NewString()
	drafts := uuid.NewString()

	return &models.Snapshot{
		Profiles: []models.Profile{
			{ID: writer, UserID: userID, Name: "Alex", CreatedAt: at(0)},
			{ID: poet, UserID: userID, Name: "Alex (Poetry)", CreatedAt: at(1)},
		},
		Projects: []models.Project{
			{ID: novel, UserID: userID, ProfileID: ptr(writer), Name: "My Novel", CreatedAt: at(2), UpdatedAt: at(2)},
			{ID: legacy, UserID: userID, Name: "Old Notebook", CreatedAt: at(3), UpdatedAt: at(3)},
		},
		Folders: []models.Folder{
			{ID: ch1, ProjectID: novel, Name: "Chapter 1: Arrival", Order: 0, CreatedAt: at(4), UpdatedAt: at(4)},
			{ID: ch2, ProjectID: novel, Name: "Chapter 2: The Storm", Order: 1, CreatedAt: at(5), UpdatedAt: at(5)},
			{ID: drafts, ProjectID: novel, Name: "Cut Scenes", Order: 2, CreatedAt: at(6), UpdatedAt: at(6)},
		},
		Documents: []models.Document{
			{ID: uuid.NewString(), ProjectID: novel, Name: "Synopsis", Order: 0, CreatedAt: at(7), UpdatedAt: at(7),
				Content: ptr("<p>A lighthouse keeper finds a letter that should not exist.</p>")},
			{ID: uuid.NewString(), ProjectID: novel, FolderID: ptr(ch1), Name: "Scene 1", Order: 0, CreatedAt: at(8), UpdatedAt: at(8),
				Content: ptr("<h1>Arrival</h1><p>The ferry left her on the rocks at dusk.</p><ul><li>gulls</li><li>salt</li></ul>")},
			{ID: uuid.NewString(), ProjectID: novel, FolderID: ptr(ch1), Name: "Scene 2?", Order: 1, CreatedAt: at(9), UpdatedAt: at(9),
				Content: ptr("<p>She climbed the <strong>214</strong> steps.</p><hr><p>Night.</p>")},
			{ID: uuid.NewString(), ProjectID: novel, FolderID: ptr(ch2), Name: "Storm", Order: 0, CreatedAt: at(10), UpdatedAt: at(10)},
			{ID: uuid.NewString(), ProjectID: legacy, Name: "Ideas", Order: 0, CreatedAt: at(11), UpdatedAt: at(11),
				Content: ptr("Plain text from before the rich editor.")},
		},
	}
}
