package cli

import (
	"fmt"

	"github.com/pkgmint-labs/pkgmint/internal/config"
	"github.com/pkgmint-labs/pkgmint/internal/create"
	"github.com/pkgmint-labs/pkgmint/internal/request"
	"github.com/spf13/cobra"
)

var (
	newAuthor      string
	newEmail       string
	newLicense     string
	newGit         bool
	newGitUsername string
	newGitEmail    string
	newReadme      bool
	newCheckName   bool
	newDocSite     bool
)

func init() {
	newCmd.Flags().StringVar(&newAuthor, "author", "", "Author display name, at least two words (default: config default_author)")
	newCmd.Flags().StringVar(&newEmail, "email", "", "Author email (default: config default_email)")
	newCmd.Flags().StringVar(&newLicense, "license", "", "Package license: MIT or GPL-3 (default: config default_license, else MIT)")
	newCmd.Flags().BoolVar(&newGit, "git", true, "Initialize a git repository with an initial commit")
	newCmd.Flags().StringVar(&newGitUsername, "git-username", "", "Repository-local git user.name")
	newCmd.Flags().StringVar(&newGitEmail, "git-email", "", "Repository-local git user.email")
	newCmd.Flags().BoolVar(&newReadme, "readme", true, "Create a README.md")
	newCmd.Flags().BoolVar(&newCheckName, "check-name", true, "Advisory package-name availability lookup")
	newCmd.Flags().BoolVar(&newDocSite, "docsite", true, "Set up and build the documentation site")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Mint a new package at the given path",
	Long: `Create a new package at the given path. The last path segment becomes the
package name and must start with a letter, contain only letters, digits and
dots, and not end in a dot.

Examples:
  pkgmint new ~/projects/mintpkg --author "Jane Doe" --email jane@example.com
  pkgmint new ./tools.helper --license GPL-3 --git=false`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		author := newAuthor
		if author == "" {
			author = config.Get(config.KeyDefaultAuthor)
		}
		email := newEmail
		if email == "" {
			email = config.Get(config.KeyDefaultEmail)
		}
		license := newLicense
		if license == "" {
			license = config.Get(config.KeyDefaultLicense)
		}
		if license == "" {
			license = string(request.LicenseMIT)
		}

		req := &request.Request{
			Path:        args[0],
			Author:      author,
			Email:       email,
			License:     request.License(license),
			Git:         newGit,
			GitUsername: newGitUsername,
			GitEmail:    newGitEmail,
			Readme:      newReadme,
			CheckName:   newCheckName,
			DocSite:     newDocSite,
		}

		runner := create.NewDefaultRunner(config.Get(config.KeyGitHubToken))
		result, err := runner.Run(cmd.Context(), req)
		if err != nil {
			return err
		}

		printResult(result)
		return nil
	},
}

func printResult(result *create.Result) {
	fmt.Printf("Created package %s at %s\n", result.PackageName, result.Path)
	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit pkgmint.yaml to refine the package description")
	fmt.Println("  2. Add sources under src/ and export them in namespace.yaml")
}
