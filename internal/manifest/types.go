package manifest

// FileName is the manifest file name at the root of every generated package.
const FileName = "pkgmint.yaml"

// Manifest is the declarative metadata file of a package.
type Manifest struct {
	Name        string   `yaml:"name" json:"name"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	License     string   `yaml:"license" json:"license"`
	Authors     []Author `yaml:"authors" json:"authors"`
	Namespace   string   `yaml:"namespace,omitempty" json:"namespace,omitempty"`
}

// Author is one entry of the manifest authors list.
type Author struct {
	Given  string `yaml:"given" json:"given"`
	Family string `yaml:"family" json:"family"`
	Email  string `yaml:"email,omitempty" json:"email,omitempty"`
	Role   string `yaml:"role,omitempty" json:"role,omitempty"`
}

// RoleCreator marks the author who created the package.
const RoleCreator = "creator"
