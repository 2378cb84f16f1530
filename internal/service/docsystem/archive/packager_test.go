package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FuFicFac/vibe-writer/internal/domain"
)

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(body)
	}
	return entries
}

func TestPack_MirrorsTree(t *testing.T) {
	tree, err := newTestBuilder().Build(context.Background(), "P1", novelSnapshot())
	require.NoError(t, err)

	stamp := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)
	data, err := NewPackager(0).Pack(tree, stamp)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		assert.True(t, f.Modified.Equal(stamp), "entry %s stamped %v", f.Name, f.Modified)
		if strings.HasSuffix(f.Name, "/") {
			assert.True(t, f.Mode().IsDir(), "entry %s should be a directory", f.Name)
		}
	}
	assert.Equal(t, []string{
		"My Novel/",
		"My Novel/Chapter 1/",
		"My Novel/Chapter 1/Scene A.md",
	}, names)

	assert.Equal(t, "# Intro", readZip(t, data)["My Novel/Chapter 1/Scene A.md"])
}

func TestPack_Placeholders(t *testing.T) {
	tree := NewTree()
	tree.Root.File(NoProjectsFileName, []byte(NoProjectsMessage))
	tree.Root.Folder("Notes").Folder("Ideas").File(EmptyFolderMarker, []byte{})

	data, err := NewPackager(0).Pack(tree, time.Now())
	require.NoError(t, err)

	entries := readZip(t, data)
	assert.Equal(t, NoProjectsMessage, entries["readme.txt"])
	content, ok := entries["Notes/Ideas/.empty"]
	assert.True(t, ok)
	assert.Empty(t, content)
}

func TestPack_EmptyTree(t *testing.T) {
	data, err := NewPackager(0).Pack(NewTree(), time.Now())
	require.NoError(t, err)

	assert.Empty(t, readZip(t, data))
}

func TestPack_SizeLimit(t *testing.T) {
	tree := NewTree()
	tree.Root.Folder("Book").File("Huge.md", bytes.Repeat([]byte("all work and no play "), 4096))

	data, err := NewPackager(64).Pack(tree, time.Now())

	require.Error(t, err)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, domain.ErrPackaging))

	var pe *domain.PackagingError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "limit", pe.Stage)
}

func TestTree_Lookup(t *testing.T) {
	tree := NewTree()
	tree.Root.Folder("A").Folder("B").File("c.md", []byte("c"))

	require.NotNil(t, tree.Lookup("A/B/c.md"))
	assert.Equal(t, "c", string(tree.Lookup("A/B/c.md").Content))
	assert.True(t, tree.Lookup("A/B").Dir)
	assert.Nil(t, tree.Lookup("A/c.md"))
	assert.Nil(t, tree.Lookup("A/B/c.md/d"))
}
