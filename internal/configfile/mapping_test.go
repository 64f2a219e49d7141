package configfile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkgmint-labs/pkgmint/internal/request"
)

func TestToRequest_Defaults(t *testing.T) {
	doc := Document{
		"pkg_name":   "mintpkg",
		"first_name": "Jane",
		"last_name":  "Doe",
	}

	req, err := doc.ToRequest("/tmp/projects")
	if err != nil {
		t.Fatalf("ToRequest() error: %v", err)
	}

	if req.Path != filepath.Join("/tmp/projects", "mintpkg") {
		t.Errorf("Path = %q, want it rooted at the parent dir", req.Path)
	}
	if req.Author != "Jane Doe" {
		t.Errorf("Author = %q, want %q", req.Author, "Jane Doe")
	}
	if req.License != request.LicenseMIT {
		t.Errorf("License = %q, want MIT default", req.License)
	}
	// Config-driven defaults: git and doc site off, readme and name check on.
	if req.Git {
		t.Error("Git = true, want false by default")
	}
	if req.DocSite {
		t.Error("DocSite = true, want false by default")
	}
	if !req.Readme {
		t.Error("Readme = false, want true by default")
	}
	if !req.CheckName {
		t.Error("CheckName = false, want true by default")
	}
	if req.Email != "" {
		t.Errorf("Email = %q, want empty", req.Email)
	}
}

func TestToRequest_ExplicitValues(t *testing.T) {
	doc := Document{
		"pkg_name":       "mintpkg",
		"first_name":     "Jane",
		"last_name":      "Doe",
		"email":          "jane@example.com",
		"git":            true,
		"git_username":   "janedoe",
		"git_email":      "jane@git.example.com",
		"readme_md":      false,
		"check_pkg_name": false,
		"license":        "GPL-3",
		"pkgdown":        true,
	}

	req, err := doc.ToRequest(".")
	if err != nil {
		t.Fatalf("ToRequest() error: %v", err)
	}

	if req.License != request.LicenseGPL3 {
		t.Errorf("License = %q, want GPL-3", req.License)
	}
	if !req.Git || req.GitUsername != "janedoe" || req.GitEmail != "jane@git.example.com" {
		t.Errorf("git settings = %v/%q/%q, want enabled with both identities", req.Git, req.GitUsername, req.GitEmail)
	}
	if req.Readme || req.CheckName {
		t.Error("explicit false values should override the defaults")
	}
	if !req.DocSite {
		t.Error("DocSite = false, want true")
	}
	if req.Email != "jane@example.com" {
		t.Errorf("Email = %q, want jane@example.com", req.Email)
	}
}

func TestToRequest_GitIdentityIgnoredWhenGitDisabled(t *testing.T) {
	doc := Document{
		"pkg_name":     "mintpkg",
		"first_name":   "Jane",
		"last_name":    "Doe",
		"git":          false,
		"git_username": "janedoe",
	}

	req, err := doc.ToRequest(".")
	if err != nil {
		t.Fatalf("ToRequest() error: %v", err)
	}
	if req.GitUsername != "" {
		t.Errorf("GitUsername = %q, want empty when git is disabled", req.GitUsername)
	}
}

func TestToRequest_MissingRequiredFields(t *testing.T) {
	doc := Document{
		"pkg_name": "mintpkg",
	}

	_, err := doc.ToRequest(".")
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("ToRequest() = %v, want ErrMissingField", err)
	}

	// Every absent key is named, not just the first.
	for _, key := range []string{"first_name", "last_name"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name missing key %s", err, key)
		}
	}
}

func TestToRequest_MissingLastNameOnly(t *testing.T) {
	doc := Document{
		"pkg_name":   "mintpkg",
		"first_name": "Jane",
	}

	_, err := doc.ToRequest(".")
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("ToRequest() = %v, want ErrMissingField", err)
	}
	if !strings.Contains(err.Error(), "last_name") {
		t.Errorf("error %q does not name last_name", err)
	}
	if strings.Contains(err.Error(), "first_name") {
		t.Errorf("error %q should not name first_name", err)
	}
}
