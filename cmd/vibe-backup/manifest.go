package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
)

func manifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Preview the entries a profile's backup would contain",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app) error {
			profileID, _ := cmd.Flags().GetString("profile")

			manifest, err := a.service.Preview(ctx, &docsysSvc.BackupRequest{
				UserID:    a.userID,
				ProfileID: profileID,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(manifest)
			}

			fmt.Fprintln(out, manifest.FileName)
			for _, e := range manifest.Entries {
				switch {
				case e.Dir:
					fmt.Fprintf(out, "  %s/\n", e.Path)
				case e.WordCount > 0:
					fmt.Fprintf(out, "  %s (%d words)\n", e.Path, e.WordCount)
				default:
					fmt.Fprintf(out, "  %s\n", e.Path)
				}
			}
			return nil
		}),
	}

	cmd.Flags().StringP("profile", "p", "", "Profile ID to preview")
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}
