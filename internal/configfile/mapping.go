package configfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v3"

	"github.com/pkgmint-labs/pkgmint/internal/request"
)

// settings is the typed view of a creation config document. Pointer fields
// distinguish "absent" from zero values so defaults apply only when a key is
// genuinely missing.
type settings struct {
	PkgName      string  `yaml:"pkg_name" validate:"required"`
	FirstName    string  `yaml:"first_name" validate:"required"`
	LastName     string  `yaml:"last_name" validate:"required"`
	Email        *string `yaml:"email"`
	Git          *bool   `yaml:"git"`
	GitUsername  *string `yaml:"git_username"`
	GitEmail     *string `yaml:"git_email"`
	ReadmeMD     *bool   `yaml:"readme_md"`
	CheckPkgName *bool   `yaml:"check_pkg_name"`
	License      *string `yaml:"license"`
	Pkgdown      *bool   `yaml:"pkgdown"`
}

// Defaults for optional keys of the config-driven entry point. Git and the
// doc site are off by default here, unlike the direct CLI call.
var configDefaults = struct {
	Git          bool
	ReadmeMD     bool
	CheckPkgName bool
	Pkgdown      bool
	License      request.License
}{
	Git:          false,
	ReadmeMD:     true,
	CheckPkgName: true,
	Pkgdown:      false,
	License:      request.LicenseMIT,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field names as their config keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ToRequest maps a decoded config document onto a creation request rooted at
// parentDir. Every absent required key is reported at once.
func (d Document) ToRequest(parentDir string) (*request.Request, error) {
	s, err := d.decode()
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
		}
		return nil, fmt.Errorf("validating config: %w", err)
	}

	req := &request.Request{
		Path:      filepath.Join(parentDir, s.PkgName),
		Author:    s.FirstName + " " + s.LastName,
		Email:     stringOr(s.Email, ""),
		License:   request.License(stringOr(s.License, string(configDefaults.License))),
		Git:       boolOr(s.Git, configDefaults.Git),
		Readme:    boolOr(s.ReadmeMD, configDefaults.ReadmeMD),
		CheckName: boolOr(s.CheckPkgName, configDefaults.CheckPkgName),
		DocSite:   boolOr(s.Pkgdown, configDefaults.Pkgdown),
	}
	if req.Git {
		req.GitUsername = stringOr(s.GitUsername, "")
		req.GitEmail = stringOr(s.GitEmail, "")
	}
	return req, nil
}

// decode round-trips the generic mapping through YAML into the typed view.
func (d Document) decode() (*settings, error) {
	raw, err := yaml.Marshal(map[string]interface{}(d))
	if err != nil {
		return nil, fmt.Errorf("encoding config document: %w", err)
	}
	var s settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &s, nil
}

func stringOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
