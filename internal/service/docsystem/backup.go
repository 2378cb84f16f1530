package docsystem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/FuFicFac/vibe-writer/internal/config"
	"github.com/FuFicFac/vibe-writer/internal/domain"
	models "github.com/FuFicFac/vibe-writer/internal/domain/models/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/domain/repositories"
	docsysRepo "github.com/FuFicFac/vibe-writer/internal/domain/repositories/docsystem"
	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/service/docsystem/archive"
	"github.com/FuFicFac/vibe-writer/internal/utils"
)

// BackupRepositories groups the read repositories a backup needs
type BackupRepositories struct {
	Profiles  docsysRepo.ProfileRepository
	Projects  docsysRepo.ProjectRepository
	Folders   docsysRepo.FolderRepository
	Documents docsysRepo.DocumentRepository
}

// backupService implements the BackupService interface
type backupService struct {
	txManager repositories.TransactionManager
	repos     BackupRepositories
	builder   *archive.Builder
	packager  *archive.Packager
	logger    *slog.Logger
	now       func() time.Time
}

// NewBackupService creates a new backup service
func NewBackupService(
	txManager repositories.TransactionManager,
	repos BackupRepositories,
	builder *archive.Builder,
	packager *archive.Packager,
	logger *slog.Logger,
) docsysSvc.BackupService {
	return &backupService{
		txManager: txManager,
		repos:     repos,
		builder:   builder,
		packager:  packager,
		logger:    logger,
		now:       time.Now,
	}
}

// Export builds and packages the backup archive for a profile
func (s *backupService) Export(ctx context.Context, req *docsysSvc.BackupRequest) (*docsysSvc.Archive, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	start := s.now()
	snap, err := s.loadSnapshot(ctx, req.UserID, true)
	if err != nil {
		return nil, err
	}

	tree, err := s.builder.Build(ctx, req.ProfileID, snap)
	if err != nil {
		return nil, err
	}

	createdAt := s.now()
	data, err := s.packager.Pack(tree, createdAt)
	if err != nil {
		s.logger.Error("backup packaging failed",
			"profile_id", req.ProfileID,
			"user_id", req.UserID,
			"error", err,
		)
		return nil, err
	}

	files, folders := tree.Stats()
	result := &docsysSvc.Archive{
		FileName:  archive.ArchiveFileName(snap.FindProfile(req.ProfileID).Name, createdAt),
		ProfileID: req.ProfileID,
		Data:      data,
		Files:     files,
		Folders:   folders,
		CreatedAt: createdAt,
	}

	s.logger.Info("backup exported",
		"profile_id", req.ProfileID,
		"user_id", req.UserID,
		"file_name", result.FileName,
		"files", files,
		"folders", folders,
		"bytes", len(data),
		"duration", s.now().Sub(start),
	)

	return result, nil
}

// Preview lists the entries the archive would contain, without packaging
func (s *backupService) Preview(ctx context.Context, req *docsysSvc.BackupRequest) (*docsysSvc.Manifest, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	snap, err := s.loadSnapshot(ctx, req.UserID, true)
	if err != nil {
		return nil, err
	}

	tree, err := s.builder.Build(ctx, req.ProfileID, snap)
	if err != nil {
		return nil, err
	}

	manifest := &docsysSvc.Manifest{
		FileName:  archive.ArchiveFileName(snap.FindProfile(req.ProfileID).Name, s.now()),
		ProfileID: req.ProfileID,
		Entries:   []docsysSvc.ManifestEntry{},
	}
	_ = tree.Walk(func(path string, node *archive.Node) error {
		entry := docsysSvc.ManifestEntry{Path: path, Dir: node.Dir, Size: len(node.Content)}
		if !node.Dir && strings.HasSuffix(path, archive.DocumentExt) {
			if content := string(node.Content); content != archive.EmptyDocumentPlaceholder {
				entry.WordCount = utils.CountWords(content)
			}
		}
		manifest.Entries = append(manifest.Entries, entry)
		return nil
	})

	return manifest, nil
}

// ListProfiles lists a user's profiles with the number of projects each would export
func (s *backupService) ListProfiles(ctx context.Context, userID string) ([]docsysSvc.ProfileSummary, error) {
	err := validation.Validate(userID, validation.Required, validation.Length(1, config.MaxIDLength))
	if err != nil {
		return nil, fmt.Errorf("%w: user_id: %v", domain.ErrValidation, err)
	}

	snap, err := s.loadSnapshot(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	summaries := make([]docsysSvc.ProfileSummary, 0, len(snap.Profiles))
	for _, profile := range snap.Profiles {
		summaries = append(summaries, docsysSvc.ProfileSummary{
			ID:       profile.ID,
			Name:     profile.Name,
			Projects: len(archive.SelectProjects(profile.ID, snap)),
		})
	}
	return summaries, nil
}

// loadSnapshot reads everything the user owns in one read transaction, so
// the export never sees a half-applied edit. Folders and documents are only
// loaded when withContent is set.
func (s *backupService) loadSnapshot(ctx context.Context, userID string, withContent bool) (*models.Snapshot, error) {
	snap := &models.Snapshot{}

	err := s.txManager.ReadTx(ctx, func(ctx context.Context) error {
		var err error
		if snap.Profiles, err = s.repos.Profiles.ListByUser(ctx, userID); err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		if snap.Projects, err = s.repos.Projects.ListByUser(ctx, userID); err != nil {
			return fmt.Errorf("load projects: %w", err)
		}
		if !withContent {
			return nil
		}
		if snap.Folders, err = s.repos.Folders.ListByUser(ctx, userID); err != nil {
			return fmt.Errorf("load folders: %w", err)
		}
		if snap.Documents, err = s.repos.Documents.ListByUser(ctx, userID); err != nil {
			return fmt.Errorf("load documents: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

func (s *backupService) validateRequest(req *docsysSvc.BackupRequest) error {
	if req == nil {
		return errors.New("request is required")
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required, validation.Length(1, config.MaxIDLength)),
		validation.Field(&req.ProfileID, validation.Required, validation.Length(1, config.MaxIDLength)),
	)
}
