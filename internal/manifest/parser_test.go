package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	m, err := Load(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Name != "mintpkg" {
		t.Errorf("Name = %q, want %q", m.Name, "mintpkg")
	}
	if m.Version != "0.1.0" {
		t.Errorf("Version = %q, want %q", m.Version, "0.1.0")
	}
	if len(m.Authors) != 1 || m.Authors[0].Given != "Jane" {
		t.Errorf("Authors = %+v, want one entry with given Jane", m.Authors)
	}
}

func TestLoad_NotFound(t *testing.T) {
	if _, err := Load(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	m := &Manifest{
		Name:    "mintpkg",
		Version: "0.1.0",
		License: "MIT",
		Authors: []Author{{Given: "Jane", Family: "Doe", Email: "jane@example.com"}},
	}
	if err := Save(path, m); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Name != m.Name || loaded.Version != m.Version || loaded.License != m.License {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, m)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	m := &Manifest{
		Name:    "123bad",
		Version: "0.1.0",
		License: "MIT",
		Authors: []Author{{Given: "Jane", Family: "Doe"}},
	}
	if err := Save(path, m); err == nil {
		t.Fatal("expected error for invalid manifest, got nil")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid manifest should not be written")
	}
}

func TestSetAuthor(t *testing.T) {
	dir := t.TempDir()

	m := &Manifest{
		Name:    "mintpkg",
		Version: "0.1.0",
		License: "MIT",
		Authors: []Author{{Given: "Placeholder", Family: "Author"}},
	}
	if err := Save(Path(dir), m); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if err := SetAuthor(dir, "Jane", "van der Berg", "jane@example.com"); err != nil {
		t.Fatalf("SetAuthor() error: %v", err)
	}

	updated, err := Load(Path(dir))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(updated.Authors) != 1 {
		t.Fatalf("Authors = %+v, want exactly one", updated.Authors)
	}
	a := updated.Authors[0]
	if a.Given != "Jane" || a.Family != "van der Berg" || a.Email != "jane@example.com" || a.Role != RoleCreator {
		t.Errorf("author = %+v, want Jane van der Berg creator", a)
	}

	// The raw file keeps both name parts.
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	for _, want := range []string{"given: Jane", "family: van der Berg"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("manifest missing %q:\n%s", want, data)
		}
	}
}

func TestSetAuthor_MissingManifest(t *testing.T) {
	if err := SetAuthor(t.TempDir(), "Jane", "Doe", ""); err == nil {
		t.Fatal("expected error when manifest is absent, got nil")
	}
}
