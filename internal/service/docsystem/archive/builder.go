package archive

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/FuFicFac/vibe-writer/internal/domain"
	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
)

const (
	// DocumentExt is the extension of every exported document
	DocumentExt = ".md"

	// EmptyFolderMarker keeps folders without documents in the archive,
	// since zip readers drop directories that have no entries
	EmptyFolderMarker = ".empty"

	// NoProjectsFileName and NoProjectsMessage make up the only entry of a
	// backup for a profile without projects
	NoProjectsFileName = "readme.txt"
	NoProjectsMessage  = "No projects found in this profile."
)

// Builder walks a profile's projects, folders and documents and lays them
// out as a virtual file tree. It reads the snapshot and never modifies it.
type Builder struct {
	transcoder *Transcoder
	logger     *slog.Logger
}

// NewBuilder creates a builder
func NewBuilder(transcoder *Transcoder, logger *slog.Logger) *Builder {
	return &Builder{
		transcoder: transcoder,
		logger:     logger,
	}
}

// Build lays out the backup tree for one profile:
//
//	<Project>/<root document>.md
//	<Project>/<Folder>/<document>.md
//	<Project>/<Folder>/.empty        (folder without documents)
//	readme.txt                        (profile without projects)
//
// Returns domain.ErrNotFound if the profile is not in the snapshot.
// The same snapshot always produces the same tree.
func (b *Builder) Build(ctx context.Context, profileID string, snap *models.Snapshot) (*Tree, error) {
	profile := snap.FindProfile(profileID)
	if profile == nil {
		return nil, fmt.Errorf("backup: %w", &domain.NotFoundError{Resource: "profile", ID: profileID})
	}

	tree := NewTree()
	projects := SelectProjects(profileID, snap)
	if len(projects) == 0 {
		tree.Root.File(NoProjectsFileName, []byte(NoProjectsMessage))
		b.logger.Info("profile has no projects, writing placeholder",
			"profile_id", profileID,
		)
		return tree, nil
	}

	idx := newSnapshotIndex(snap)

	for i, project := range projects {
		projectDir := b.folder(tree.Root, Sanitize(project.Name, Relaxed, FallbackProject, i+1), project.ID)

		// Root documents first, then folders
		b.addDocuments(ctx, projectDir, idx.rootDocs[project.ID])

		for j, folder := range idx.projectFolders[project.ID] {
			folderDir := b.folder(projectDir, Sanitize(folder.Name, Relaxed, FallbackFolder, j+1), folder.ID)

			docs := idx.folderDocs[folder.ID]
			if len(docs) == 0 {
				folderDir.File(EmptyFolderMarker, []byte{})
				continue
			}
			b.addDocuments(ctx, folderDir, docs)
		}

		if orphans := idx.orphans[project.ID]; orphans > 0 {
			b.logger.Warn("skipping documents whose folder no longer exists",
				"project_id", project.ID,
				"count", orphans,
			)
		}
	}

	return tree, nil
}

// addDocuments writes one markdown file per document, in the given order
func (b *Builder) addDocuments(ctx context.Context, dir *Node, docs []models.Document) {
	for k, doc := range docs {
		name := Sanitize(doc.Name, Relaxed, FallbackDocument, k+1) + DocumentExt
		markdown := b.transcoder.Transcode(ctx, doc.ID, doc.Content)
		if dir.File(name, []byte(markdown)) {
			b.logger.Warn("archive name collision, earlier document overwritten",
				"folder", dir.Name,
				"file", name,
				"doc_id", doc.ID,
			)
		}
	}
}

// folder creates a child folder. A sibling with the same sanitized name is
// merged into, not replaced.
func (b *Builder) folder(parent *Node, name, entityID string) *Node {
	if parent.Has(name) {
		b.logger.Warn("archive name collision, merging folders",
			"parent", parent.Name,
			"folder", name,
			"id", entityID,
		)
	}
	return parent.Folder(name)
}

// SelectProjects returns the projects exported for a profile, in snapshot order.
func SelectProjects(profileID string, snap *models.Snapshot) []models.Project {
	var selected []models.Project
	for _, project := range snap.Projects {
		if project.HasProfile() {
			if *project.ProfileID == profileID {
				selected = append(selected, project)
			}
			continue
		}
		if adoptsLegacyProject(profileID, snap) {
			selected = append(selected, project)
		}
	}
	return selected
}

// adoptsLegacyProject reports whether a project without a profile belongs to
// profileID. Projects created before profiles existed have no profile_id and
// are treated as belonging to the first profile. New projects always carry
// a profile, so this only applies to pre-migration data.
func adoptsLegacyProject(profileID string, snap *models.Snapshot) bool {
	first := snap.FirstProfileID()
	return first != "" && profileID == first
}

// snapshotIndex groups snapshot entities by parent, sorted for output
type snapshotIndex struct {
	projectFolders map[string][]models.Folder   // project ID -> folders by order
	folderDocs     map[string][]models.Document // folder ID -> documents by order
	rootDocs       map[string][]models.Document // project ID -> root documents by order
	orphans        map[string]int               // project ID -> documents with a missing folder
}

func newSnapshotIndex(snap *models.Snapshot) *snapshotIndex {
	idx := &snapshotIndex{
		projectFolders: make(map[string][]models.Folder),
		folderDocs:     make(map[string][]models.Document),
		rootDocs:       make(map[string][]models.Document),
		orphans:        make(map[string]int),
	}

	folderIDs := make(map[string]bool, len(snap.Folders))
	for _, folder := range snap.Folders {
		folderIDs[folder.ID] = true
		idx.projectFolders[folder.ProjectID] = append(idx.projectFolders[folder.ProjectID], folder)
	}

	for _, doc := range snap.Documents {
		switch {
		case doc.IsRoot():
			idx.rootDocs[doc.ProjectID] = append(idx.rootDocs[doc.ProjectID], doc)
		case folderIDs[*doc.FolderID]:
			idx.folderDocs[*doc.FolderID] = append(idx.folderDocs[*doc.FolderID], doc)
		default:
			idx.orphans[doc.ProjectID]++
		}
	}

	// Stable sorts: equal order values keep snapshot order
	for _, folders := range idx.projectFolders {
		sort.SliceStable(folders, func(i, j int) bool { return folders[i].Order < folders[j].Order })
	}
	for _, docs := range idx.folderDocs {
		sortDocuments(docs)
	}
	for _, docs := range idx.rootDocs {
		sortDocuments(docs)
	}

	return idx
}

func sortDocuments(docs []models.Document) {
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].Order < docs[j].Order })
}
