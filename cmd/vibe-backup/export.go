package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
	serviceDocsys "github.com/FuFicFac/vibe-writer/internal/service/docsystem"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a profile's backup archive to disk",
		Long: `Export every project, folder and document of a profile as a zip of
markdown files named <profile>_vibe_writer_backup_<date>.zip.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app) error {
			profileID, _ := cmd.Flags().GetString("profile")
			outDir, _ := cmd.Flags().GetString("out")

			archive, err := a.service.Export(ctx, &docsysSvc.BackupRequest{
				UserID:    a.userID,
				ProfileID: profileID,
			})
			if err != nil {
				return err
			}

			deliverer := serviceDocsys.NewFileDeliverer(outDir, a.logger)
			if err := deliverer.Deliver(ctx, archive); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d files, %d folders, %d bytes)\n",
				deliverer.Path(archive), archive.Files, archive.Folders, len(archive.Data))
			return nil
		}),
	}

	cmd.Flags().StringP("profile", "p", "", "Profile ID to export")
	cmd.Flags().StringP("out", "o", ".", "Directory to write the archive into")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}
