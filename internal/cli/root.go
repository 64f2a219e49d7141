package cli

import (
	"fmt"

	"github.com/pkgmint-labs/pkgmint/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a new source package: directory layout, manifest,
author metadata, README, license text, version control, and documentation
site, from command-line flags or a YAML/JSON configuration file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags. Cobra's
// own error printing is silenced, so the message is written here and main only
// maps the returned error to an exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}
