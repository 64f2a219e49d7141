package create

import (
	"context"

	"github.com/pkgmint-labs/pkgmint/internal/availability"
	"github.com/pkgmint-labs/pkgmint/internal/request"
)

// SkeletonGenerator produces the base directory layout, manifest, and
// namespace file of a new package. Returned warnings do not fail the step.
type SkeletonGenerator interface {
	Create(req *request.Request, path string) (warnings []string, err error)
}

// MetadataWriter populates the manifest author fields.
type MetadataWriter interface {
	SetAuthor(path, given, family, email string) error
}

// ReadmeWriter creates the package README.
type ReadmeWriter interface {
	Create(req *request.Request, path string) error
}

// LicenseWriter writes the license text for the chosen license.
type LicenseWriter interface {
	Apply(l request.License, holder, path string) error
}

// VersionControl handles local repository initialization.
type VersionControl interface {
	Init(path string) error
	Configure(path, username, email string) error
	CommitAll(path, message string) error
}

// RemoteRepoCreator creates a hosted repository for the package and returns
// its clone URL.
type RemoteRepoCreator interface {
	Create(ctx context.Context, path, name string) (string, error)
}

// DocSiteBuilder sets up and builds the documentation site.
type DocSiteBuilder interface {
	Setup(path string) error
	Build(path string) error
}

// NameChecker performs the advisory package-name availability lookup.
type NameChecker interface {
	Check(ctx context.Context, name string) (availability.Status, error)
}

// Collaborators bundles every external dependency of a Runner. Remote may be
// nil when no hosting credentials are configured; all other fields must be
// set.
type Collaborators struct {
	Skeleton  SkeletonGenerator
	Metadata  MetadataWriter
	Readme    ReadmeWriter
	License   LicenseWriter
	Git       VersionControl
	Remote    RemoteRepoCreator
	DocSite   DocSiteBuilder
	NameCheck NameChecker
}
