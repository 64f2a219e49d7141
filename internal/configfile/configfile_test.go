package configfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead_YAML(t *testing.T) {
	path := writeTemp(t, "create.yaml", "pkg_name: mintpkg\nfirst_name: Jane\nlast_name: Doe\ngit: true\n")

	doc, err := Read(path, FormatYAML)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if doc["pkg_name"] != "mintpkg" {
		t.Errorf("pkg_name = %v, want mintpkg", doc["pkg_name"])
	}
	if doc["git"] != true {
		t.Errorf("git = %v, want true", doc["git"])
	}
}

func TestRead_JSON(t *testing.T) {
	path := writeTemp(t, "create.json", `{"pkg_name":"mintpkg","first_name":"Jane","last_name":"Doe"}`)

	doc, err := Read(path, FormatJSON)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if doc["last_name"] != "Doe" {
		t.Errorf("last_name = %v, want Doe", doc["last_name"])
	}
}

func TestRead_YMLAlias(t *testing.T) {
	path := writeTemp(t, "create.yml", "pkg_name: mintpkg\nfirst_name: Jane\nlast_name: Doe\n")

	for _, format := range []Format{"yml", "YAML"} {
		doc, err := Read(path, format)
		if err != nil {
			t.Fatalf("Read(%q) error: %v", format, err)
		}
		if doc["pkg_name"] != "mintpkg" {
			t.Errorf("Read(%q) pkg_name = %v, want mintpkg", format, doc["pkg_name"])
		}
	}
}

func TestRead_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"), FormatYAML)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Read() = %v, want ErrNotFound", err)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := writeTemp(t, "create.toml", "pkg_name = 'x'\n")
		_, err := Read(path, Format("toml"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Read() = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("parse error", func(t *testing.T) {
		path := writeTemp(t, "create.json", "{not json")
		_, err := Read(path, FormatJSON)
		if !errors.Is(err, ErrParse) {
			t.Errorf("Read() = %v, want ErrParse", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		path := writeTemp(t, "create.yaml", "")
		_, err := Read(path, FormatYAML)
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("Read() = %v, want ErrEmpty", err)
		}
	})
}

func TestWrite_RoundTrip(t *testing.T) {
	doc := Document{
		"pkg_name":   "mintpkg",
		"first_name": "Jane",
		"last_name":  "Doe",
		"git":        true,
		"readme_md":  false,
	}

	for _, name := range []string{"create.yaml", "create.json"} {
		t.Run(name, func(t *testing.T) {
			// Parent directories are created as needed.
			path := filepath.Join(t.TempDir(), "nested", "deeper", name)
			if err := Write(path, doc); err != nil {
				t.Fatalf("Write() error: %v", err)
			}

			format, err := DetectFormat(path)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Read(path, format)
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}

			for key, want := range doc {
				if got[key] != want {
					t.Errorf("key %s = %v, want %v", key, got[key], want)
				}
			}
		})
	}
}

func TestWrite_InvalidArguments(t *testing.T) {
	if err := Write("", Document{"a": 1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Write(empty path) = %v, want ErrInvalidArgument", err)
	}
	if err := Write(filepath.Join(t.TempDir(), "c.yaml"), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Write(nil doc) = %v, want ErrInvalidArgument", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path   string
		format Format
		ok     bool
	}{
		{"create.yaml", FormatYAML, true},
		{"create.yml", FormatYAML, true},
		{"create.JSON", FormatJSON, true},
		{"create.toml", "", false},
		{"create", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := DetectFormat(tt.path)
			if tt.ok && (err != nil || format != tt.format) {
				t.Errorf("DetectFormat() = %v, %v; want %v", format, err, tt.format)
			}
			if !tt.ok && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("DetectFormat() = %v, want ErrUnsupportedFormat", err)
			}
		})
	}
}
