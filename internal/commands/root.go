package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiwake-dev/shiwake/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "shiwake",
		Short:   "Bank-statement import for personal bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newDetectCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}
