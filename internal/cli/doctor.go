package cli

import (
	"fmt"
	"os"

	"github.com/pkgmint-labs/pkgmint/internal/config"
	"github.com/pkgmint-labs/pkgmint/internal/manifest"
	"github.com/pkgmint-labs/pkgmint/internal/request"
	"github.com/spf13/cobra"
)

var checkManifestPath string

func init() {
	doctorCmd.Flags().StringVar(&checkManifestPath, "check-manifest", "", "Validate a manifest file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the pkgmint setup",
	Long:  `Run diagnostic checks on the user configuration and, optionally, a package manifest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkManifestPath != "" {
			return runManifestCheck(checkManifestPath)
		}

		config.Load()
		runConfigChecks()
		return nil
	},
}

func runConfigChecks() {
	fmt.Println("Configuration:")

	if _, err := os.Stat(config.FilePath()); err == nil {
		fmt.Printf("  [ OK ] config file %s\n", config.FilePath())
	} else {
		fmt.Printf("  [MISS] no config file at %s (run 'pkgmint config set' to create one)\n", config.FilePath())
	}

	if author := config.Get(config.KeyDefaultAuthor); author != "" {
		if _, _, err := request.ParseAuthor(author); err != nil {
			fmt.Printf("  [WARN] default_author %q is not a usable author name: %v\n", author, err)
		} else {
			fmt.Printf("  [ OK ] default_author %q\n", author)
		}
	} else {
		fmt.Println("  [MISS] default_author not set; 'pkgmint new' will require --author")
	}

	if lic := config.Get(config.KeyDefaultLicense); lic != "" {
		known := false
		for _, s := range request.SupportedLicenses {
			if request.License(lic) == s {
				known = true
			}
		}
		if known {
			fmt.Printf("  [ OK ] default_license %q\n", lic)
		} else {
			fmt.Printf("  [WARN] default_license %q is not supported (MIT, GPL-3)\n", lic)
		}
	}

	if config.Get(config.KeyGitHubToken) != "" {
		fmt.Println("  [ OK ] github_token set; remote repositories will be created")
	} else {
		fmt.Println("  [MISS] github_token not set; remote repository creation is disabled")
	}
}

func runManifestCheck(path string) error {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating manifest: %w", err)
	}

	if result.Valid {
		fmt.Printf("%s is valid\n", path)
		return nil
	}

	fmt.Printf("%s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Printf("  - %s\n", msg)
	}
	return fmt.Errorf("manifest validation failed")
}
