package create

import (
	"github.com/pkgmint-labs/pkgmint/internal/availability"
	"github.com/pkgmint-labs/pkgmint/internal/docsite"
	"github.com/pkgmint-labs/pkgmint/internal/license"
	"github.com/pkgmint-labs/pkgmint/internal/manifest"
	"github.com/pkgmint-labs/pkgmint/internal/request"
	"github.com/pkgmint-labs/pkgmint/internal/scaffold"
	"github.com/pkgmint-labs/pkgmint/internal/vcs"
)

// NewDefaultRunner wires a Runner to the real collaborators. The token is
// used for remote repository creation and authenticated name lookups; when
// empty, no remote is created and the lookup runs unauthenticated.
func NewDefaultRunner(token string) *Runner {
	c := Collaborators{
		Skeleton:  scaffoldGenerator{},
		Metadata:  manifestWriter{},
		Readme:    readmeWriter{},
		License:   licenseWriter{},
		Git:       gitControl{},
		DocSite:   docSiteBuilder{},
		NameCheck: availability.NewChecker(token),
	}
	if token != "" {
		c.Remote = vcs.NewRemoteCreator(token)
	}
	return NewRunner(c)
}

type scaffoldGenerator struct{}

func (scaffoldGenerator) Create(req *request.Request, path string) ([]string, error) {
	given, family, err := req.AuthorParts()
	if err != nil {
		return nil, err
	}
	data := scaffold.NewData(req.PackageName(), req.Author, given, family, req.Email, string(req.License))
	result, err := scaffold.Generate(data, path)
	if err != nil {
		return nil, err
	}
	return result.Warnings, nil
}

type manifestWriter struct{}

func (manifestWriter) SetAuthor(path, given, family, email string) error {
	return manifest.SetAuthor(path, given, family, email)
}

type readmeWriter struct{}

func (readmeWriter) Create(req *request.Request, path string) error {
	given, family, err := req.AuthorParts()
	if err != nil {
		return err
	}
	data := scaffold.NewData(req.PackageName(), req.Author, given, family, req.Email, string(req.License))
	return scaffold.WriteReadme(data, path)
}

type licenseWriter struct{}

func (licenseWriter) Apply(l request.License, holder, path string) error {
	return license.Apply(l, holder, path)
}

type gitControl struct{}

func (gitControl) Init(path string) error { return vcs.Init(path) }

func (gitControl) Configure(path, username, email string) error {
	return vcs.Configure(path, username, email)
}

func (gitControl) CommitAll(path, message string) error {
	return vcs.CommitAll(path, message)
}

type docSiteBuilder struct{}

func (docSiteBuilder) Setup(path string) error { return docsite.Setup(path) }
func (docSiteBuilder) Build(path string) error { return docsite.Build(path) }

// Interface conformance for the network-backed collaborators.
var (
	_ NameChecker       = (*availability.Checker)(nil)
	_ RemoteRepoCreator = (*vcs.RemoteCreator)(nil)
)
