package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDemoSnapshot(t *testing.T) {
	snap := DemoSnapshot("user-1", time.Now())

	assert.Len(t, snap.Profiles, 2)
	for _, p := range snap.Profiles {
		assert.Equal(t, "user-1", p.UserID)
	}

	var legacy int
	for _, p := range snap.Projects {
		if !p.HasProfile() {
			legacy++
		}
	}
	assert.Equal(t, 1, legacy)

	folders := map[string]bool{}
	for _, f := range snap.Folders {
		folders[f.ID] = true
	}
	for _, d := range snap.Documents {
		if !d.IsRoot() {
			assert.True(t, folders[*d.FolderID], "document %s points at a missing folder", d.Name)
		}
	}
}
