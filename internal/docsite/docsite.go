package docsite

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.yaml.in/yaml/v3"

	"github.com/pkgmint-labs/pkgmint/internal/manifest"
)

const (
	// ConfigFileName is the site configuration written by Setup.
	ConfigFileName = "docsite.yaml"

	// outputDir is where Build renders the site, relative to the package root.
	outputDir = "docs"
)

// Config is the content of docsite.yaml.
type Config struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Theme       string `yaml:"theme"`
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<main>
{{.Body}}
</main>
</body>
</html>
`))

// Setup writes the docsite.yaml configuration, seeded from the package
// manifest. An existing configuration is left untouched.
func Setup(pkgDir string) error {
	cfgPath := filepath.Join(pkgDir, ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return nil
	}

	m, err := manifest.Load(manifest.Path(pkgDir))
	if err != nil {
		return fmt.Errorf("reading manifest for site config: %w", err)
	}

	cfg := Config{
		Title:       m.Name,
		Description: m.Description,
		Theme:       "plain",
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling site config: %w", err)
	}
	if err := os.WriteFile(cfgPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", cfgPath, err)
	}
	return nil
}

// Build renders the package README into docs/index.html using the title from
// docsite.yaml. Setup must have run first.
func Build(pkgDir string) error {
	cfg, err := loadConfig(pkgDir)
	if err != nil {
		return err
	}

	readme, err := os.ReadFile(filepath.Join(pkgDir, "README.md"))
	if err != nil {
		return fmt.Errorf("reading README.md: %w", err)
	}

	var body bytes.Buffer
	if err := md.Convert(readme, &body); err != nil {
		return fmt.Errorf("rendering README.md: %w", err)
	}

	var page bytes.Buffer
	err = pageTemplate.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{
		Title: cfg.Title,
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	outDir := filepath.Join(pkgDir, outputDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	outPath := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(outPath, page.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

func loadConfig(pkgDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(pkgDir, ConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("reading site config (run setup first): %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing site config: %w", err)
	}
	return &cfg, nil
}
