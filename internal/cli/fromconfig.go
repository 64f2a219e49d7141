package cli

import (
	"github.com/pkgmint-labs/pkgmint/internal/config"
	"github.com/pkgmint-labs/pkgmint/internal/configfile"
	"github.com/pkgmint-labs/pkgmint/internal/create"
	"github.com/spf13/cobra"
)

var (
	fromConfigFormat string
	fromConfigDir    string
)

func init() {
	fromConfigCmd.Flags().StringVar(&fromConfigFormat, "format", "", "Config format: yaml or json (default: inferred from extension)")
	fromConfigCmd.Flags().StringVar(&fromConfigDir, "dir", ".", "Parent directory for the new package")
	rootCmd.AddCommand(fromConfigCmd)
}

var fromConfigCmd = &cobra.Command{
	Use:   "from-config <file>",
	Short: "Mint a new package from a YAML or JSON config file",
	Long: `Create a new package from a configuration file. Required keys: pkg_name,
first_name, last_name. Optional keys: email, git, git_username, git_email,
readme_md, check_pkg_name, license, pkgdown. Unlike "pkgmint new", git and the
documentation site are off unless the config enables them.

Example:
  pkgmint from-config create.yaml --dir ~/projects`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		runner := create.NewDefaultRunner(config.Get(config.KeyGitHubToken))
		result, err := runner.FromConfig(cmd.Context(), args[0],
			configfile.Format(fromConfigFormat), fromConfigDir)
		if err != nil {
			return err
		}

		printResult(result)
		return nil
	},
}
