package docsystem

import (
	"log/slog"

	"github.com/FuFicFac/vibe-writer/internal/config"
	"github.com/FuFicFac/vibe-writer/internal/domain/repositories"
	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/service/docsystem/archive"
	"github.com/FuFicFac/vibe-writer/internal/service/docsystem/converter"
)

// SetupBackupService wires the export engine: HTML transcoding with a plain
// text fallback, the tree builder and the size-limited packager
func SetupBackupService(
	cfg *config.Config,
	txManager repositories.TransactionManager,
	repos BackupRepositories,
	logger *slog.Logger,
) docsysSvc.BackupService {
	transcoder := archive.NewTranscoder(converter.NewHTMLConverter(), converter.NewTextExtractor(), logger)
	builder := archive.NewBuilder(transcoder, logger)
	packager := archive.NewPackager(cfg.MaxBackupBytes)

	logger.Info("backup service initialized",
		"max_backup_bytes", cfg.MaxBackupBytes,
	)

	return NewBackupService(txManager, repos, builder, packager, logger)
}
