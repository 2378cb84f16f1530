package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/FuFicFac/vibe-writer/internal/config"
	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/repository"
	serviceDocsys "github.com/FuFicFac/vibe-writer/internal/service/docsystem"
)

// app holds what every subcommand needs
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *repository.Store
	service docsysSvc.BackupService
	userID  string
	close   func()
}

// newApp loads configuration and opens the store. Logs go to stderr so
// command output on stdout stays clean.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	userID, _ := cmd.Flags().GetString("user")
	if userID == "" {
		userID = cfg.DevUserID
	}
	if userID == "" {
		return nil, errors.New("no user: pass --user or set DEV_USER_ID")
	}

	var logOutput io.Writer = cmd.ErrOrStderr()
	closeLog := func() {}
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, "vibe-backup", cfg.LogMaxFiles)
		if err != nil {
			return nil, err
		}
		logOutput = logFile
		closeLog = func() { logFile.Close() }
	}
	logger := config.NewLogger(cfg.Environment, logOutput)

	store, err := repository.Open(cmd.Context(), cfg, logger)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		service: serviceDocsys.SetupBackupService(cfg, store.TxManager, store.Repos, logger),
		userID:  userID,
		close: func() {
			store.Close()
			closeLog()
		},
	}, nil
}

// withApp runs fn with an opened app and closes it afterwards
func withApp(fn func(ctx context.Context, cmd *cobra.Command, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(cmd.Context(), cmd, a)
	}
}
