package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/pkgmint-labs/pkgmint/internal/manifest"
)

//go:embed all:templates
var scaffoldFS embed.FS

// srcDir is the source directory created inside every package skeleton.
const srcDir = "src"

// Data holds all template variables available to scaffold templates.
type Data struct {
	Name        string // Package name, e.g., "mintpkg"
	Description string // Human-readable description
	Version     string // Semver, e.g., "0.1.0"
	Author      string // Display name, e.g., "Jane Doe"
	Given       string // First author token
	Family      string // Remaining author tokens
	Email       string // May be empty
	License     string // "MIT" or "GPL-3"
	Year        int    // Current year
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData creates a Data with derived fields populated.
func NewData(name, author, given, family, email, license string) *Data {
	return &Data{
		Name:        name,
		Description: fmt.Sprintf("What %s does (one line)", name),
		Version:     "0.1.0",
		Author:      author,
		Given:       given,
		Family:      family,
		Email:       email,
		License:     license,
		Year:        time.Now().Year(),
	}
}

// Generate creates a new package skeleton at outputDir: the manifest, the
// namespace file, a .gitignore, and an empty source directory. It refuses to
// write into a non-empty directory. A generated manifest that fails schema
// validation is reported as a warning, not an error.
func Generate(data *Data, outputDir string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	if err := renderSet("package", data, outputDir, result); err != nil {
		return nil, err
	}

	if err := os.Mkdir(filepath.Join(outputDir, srcDir), 0755); err != nil {
		return nil, fmt.Errorf("creating %s directory: %w", srcDir, err)
	}
	result.Files = append(result.Files, srcDir+"/")

	// Validate the generated manifest against the JSON Schema.
	manifestFile := manifest.Path(outputDir)
	if _, err := os.Stat(manifestFile); err == nil {
		valResult, valErr := manifest.ValidateFile(manifestFile)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate manifest: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}

// WriteReadme renders the README template into an existing package directory.
func WriteReadme(data *Data, pkgDir string) error {
	result := &Result{OutputDir: pkgDir}
	return renderSet("readme", data, pkgDir, result)
}

// renderSet renders every template of the named embedded set into outputDir.
func renderSet(setName string, data *Data, outputDir string, result *Result) error {
	templatesDir := filepath.Join("templates", setName)

	entries, err := fs.ReadDir(scaffoldFS, templatesDir)
	if err != nil {
		return fmt.Errorf("template set %q not found: %w", setName, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := filepath.Join(templatesDir, entry.Name())
		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		// Strip .tmpl extension for the output filename.
		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	return nil
}
