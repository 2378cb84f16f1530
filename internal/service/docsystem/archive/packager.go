package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/FuFicFac/vibe-writer/internal/domain"
)

// ProductMarker is the fixed literal in every backup file name
const ProductMarker = "vibe_writer_backup"

// ArchiveFileName names a backup:
// <strict-sanitized lower-cased profile name>_vibe_writer_backup_<YYYY-MM-DD>.zip
// The date is the UTC calendar date of createdAt.
func ArchiveFileName(profileName string, createdAt time.Time) string {
	name := strings.ToLower(Sanitize(profileName, Strict, FallbackProfile, 1))
	return fmt.Sprintf("%s_%s_%s.zip", name, ProductMarker, createdAt.UTC().Format("2006-01-02"))
}

// Packager serializes a virtual tree into a zip archive
type Packager struct {
	maxBytes int64
}

// NewPackager creates a packager that refuses to produce archives larger
// than maxBytes (compressed)
func NewPackager(maxBytes int64) *Packager {
	return &Packager{maxBytes: maxBytes}
}

// Pack writes the tree as a zip archive whose layout mirrors the tree:
// one directory entry per folder ("name/"), deflated UTF-8 files, every entry
// stamped with modified. Any failure is a *domain.PackagingError and no
// bytes are returned.
func (p *Packager) Pack(tree *Tree, modified time.Time) ([]byte, error) {
	buf := &limitedBuffer{max: p.maxBytes}
	zw := zip.NewWriter(buf)

	err := tree.Walk(func(path string, node *Node) error {
		header := &zip.FileHeader{
			Name:     path,
			Modified: modified,
		}
		if node.Dir {
			header.Name += "/"
			header.Method = zip.Store
			header.SetMode(os.ModeDir | 0755)
		} else {
			header.Method = zip.Deflate
			header.SetMode(0644)
		}

		w, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("create entry %s: %w", header.Name, err)
		}
		if node.Dir {
			return nil
		}
		if _, err := w.Write(node.Content); err != nil {
			return fmt.Errorf("write entry %s: %w", header.Name, err)
		}
		return nil
	})
	if err != nil {
		return nil, packagingError("write", buf, err)
	}

	if err := zw.Close(); err != nil {
		return nil, packagingError("finalize", buf, err)
	}

	return buf.Bytes(), nil
}

func packagingError(stage string, buf *limitedBuffer, err error) error {
	if buf.exceeded {
		stage = "limit"
	}
	return &domain.PackagingError{Stage: stage, Err: err}
}

// errArchiveTooLarge is returned by limitedBuffer once max is exceeded
var errArchiveTooLarge = errors.New("archive exceeds size limit")

// limitedBuffer is a bytes.Buffer that fails writes past max bytes
type limitedBuffer struct {
	bytes.Buffer
	max      int64
	exceeded bool
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if b.max > 0 && int64(b.Len()+len(p)) > b.max {
		b.exceeded = true
		return 0, errArchiveTooLarge
	}
	return b.Buffer.Write(p)
}
