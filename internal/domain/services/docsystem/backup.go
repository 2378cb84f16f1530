package docsystem

import (
	"context"
	"time"
)

// BackupRequest identifies the profile to export and the account that owns it
type BackupRequest struct {
	UserID    string `json:"user_id"`
	ProfileID string `json:"profile_id"`
}

// Archive is a packaged profile backup ready for delivery
type Archive struct {
	FileName  string    `json:"file_name"` // e.g. "alex_vibe_writer_backup_2025-01-31.zip"
	ProfileID string    `json:"profile_id"`
	Data      []byte    `json:"-"`
	Files     int       `json:"files"`   // Regular file entries, markers included
	Folders   int       `json:"folders"` // Directory entries
	CreatedAt time.Time `json:"created_at"`
}

// Manifest previews the contents of a backup without packaging it
type Manifest struct {
	FileName  string          `json:"file_name"`
	ProfileID string          `json:"profile_id"`
	Entries   []ManifestEntry `json:"entries"`
}

// ManifestEntry describes one archive entry
type ManifestEntry struct {
	Path      string `json:"path"`
	Dir       bool   `json:"dir"`
	Size      int    `json:"size"`
	WordCount int    `json:"word_count,omitempty"`
}

// BackupService exports a profile's projects, folders and documents as an archive
type BackupService interface {
	// Export builds and packages the backup archive for a profile.
	// Returns domain.ErrNotFound if the profile does not exist and
	// domain.ErrPackaging if the archive could not be serialized.
	Export(ctx context.Context, req *BackupRequest) (*Archive, error)

	// Preview lists the entries the archive would contain
	Preview(ctx context.Context, req *BackupRequest) (*Manifest, error)

	// ListProfiles lists the profiles a user can export
	ListProfiles(ctx context.Context, userID string) ([]ProfileSummary, error)
}

// ProfileSummary is a profile as shown to a user choosing what to export
type ProfileSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Projects int    `json:"projects"`
}

// Deliverer hands a finished archive to the user (download, file on disk, ...)
type Deliverer interface {
	Deliver(ctx context.Context, archive *Archive) error
}
