package request

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Validation error kinds. Callers match with errors.Is.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidPackageName = errors.New("invalid package name")
	ErrInvalidAuthor      = errors.New("invalid author")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrUnsupportedLicense = errors.New("unsupported license")
)

var (
	// namePattern accepts a leading letter, then letters/digits/dots, not
	// ending in a dot. A single letter is also a valid package name.
	namePattern = regexp.MustCompile(`^[A-Za-z]([A-Za-z0-9.]*[A-Za-z0-9])?$`)

	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// License is one of the supported license identifiers.
type License string

const (
	LicenseMIT  License = "MIT"
	LicenseGPL3 License = "GPL-3"
)

// SupportedLicenses lists all valid license values.
var SupportedLicenses = []License{LicenseMIT, LicenseGPL3}

// Request is the validated intent to create one package. It is built once per
// invocation, validated before any collaborator is invoked, and discarded when
// the run completes.
type Request struct {
	// Path is the target location; its last segment is the package name.
	Path string

	// Author is the free-text display name; must contain at least two
	// whitespace-separated tokens.
	Author string

	// Email is optional; validated only when non-empty.
	Email string

	License License

	// Git enables local version-control setup; GitUsername and GitEmail are
	// only consulted when Git is true.
	Git         bool
	GitUsername string
	GitEmail    string

	Readme    bool
	CheckName bool
	DocSite   bool
}

// PackageName returns the last segment of the request path.
func (r *Request) PackageName() string {
	return filepath.Base(filepath.Clean(r.Path))
}

// AuthorParts decomposes the author into given and family names.
func (r *Request) AuthorParts() (given, family string, err error) {
	return ParseAuthor(r.Author)
}

// Validate runs every structural check on the request. It is side-effect-free
// and must pass before any collaborator is invoked. The check order is fixed:
// path presence, package name, license, author, email.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Path) == "" {
		return fmt.Errorf("%w: path is required", ErrInvalidArgument)
	}
	if name := r.PackageName(); !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must start with a letter, contain only letters, digits and dots, and not end in a dot", ErrInvalidPackageName, name)
	}
	if err := validateLicense(r.License); err != nil {
		return err
	}
	if _, _, err := ParseAuthor(r.Author); err != nil {
		return err
	}
	if r.Email != "" && !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("%w: %q does not look like local@domain.tld", ErrInvalidEmail, r.Email)
	}
	return nil
}

// ParseAuthor splits a free-text author name into a given name (first token)
// and a family name (remaining tokens joined by single spaces). It is the one
// shared tokenization rule: Validate and the manifest author writer both go
// through it.
func ParseAuthor(author string) (given, family string, err error) {
	tokens := strings.Fields(author)
	switch len(tokens) {
	case 0:
		return "", "", fmt.Errorf("%w: author is empty", ErrInvalidAuthor)
	case 1:
		return "", "", fmt.Errorf("%w: %q must contain a given and a family name", ErrInvalidAuthor, author)
	}
	return tokens[0], strings.Join(tokens[1:], " "), nil
}

func validateLicense(l License) error {
	for _, s := range SupportedLicenses {
		if l == s {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (supported: MIT, GPL-3)", ErrUnsupportedLicense, l)
}
