package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vibe-backup",
		Short:         "Export Vibe Writer profiles as zip archives of markdown files",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("user", "", "User ID that owns the profiles (default: DEV_USER_ID)")

	rootCmd.AddCommand(profilesCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(manifestCmd())

	return rootCmd
}
