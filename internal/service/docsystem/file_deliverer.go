package docsystem

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
)

// FileDeliverer writes archives into a directory on disk
type FileDeliverer struct {
	Dir    string
	logger *slog.Logger
}

// NewFileDeliverer creates a deliverer that writes into dir, creating it if needed
func NewFileDeliverer(dir string, logger *slog.Logger) *FileDeliverer {
	return &FileDeliverer{Dir: dir, logger: logger}
}

// Path returns where an archive is (or will be) written
func (d *FileDeliverer) Path(a *docsysSvc.Archive) string {
	return filepath.Join(d.Dir, filepath.Base(a.FileName))
}

// Deliver writes the archive to a temp file and renames it into place, so a
// half-written backup never appears under the final name.
// An existing backup with the same name (same profile, same day) is replaced.
func (d *FileDeliverer) Deliver(ctx context.Context, a *docsysSvc.Archive) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(d.Dir, ".vibe-backup-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(a.Data); err != nil {
		tmp.Close()
		return fmt.Errorf("write archive: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	dest := d.Path(a)
	if err := os.Rename(tmpName, dest); err != nil {
		return fmt.Errorf("rename archive: %w", err)
	}

	d.logger.Info("backup written",
		"path", dest,
		"bytes", len(a.Data),
	)
	return nil
}
