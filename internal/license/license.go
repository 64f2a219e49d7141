package license

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/pkgmint-labs/pkgmint/internal/request"
)

//go:embed texts
var textsFS embed.FS

// FileName is the name of the written license file.
const FileName = "LICENSE"

type templateData struct {
	Holder string
	Year   int
}

// Apply renders the license text for the given identifier with the holder's
// name and the current year, and writes it to pkgDir/LICENSE.
func Apply(l request.License, holder, pkgDir string) error {
	tmplBytes, err := textsFS.ReadFile(filepath.Join("texts", string(l)+".tmpl"))
	if err != nil {
		return fmt.Errorf("no license text for %q: %w", l, err)
	}

	tmpl, err := template.New(string(l)).Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing license template %s: %w", l, err)
	}

	var buf bytes.Buffer
	data := templateData{Holder: holder, Year: time.Now().Year()}
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing license template %s: %w", l, err)
	}

	outPath := filepath.Join(pkgDir, FileName)
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
