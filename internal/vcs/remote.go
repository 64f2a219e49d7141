package vcs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

// requestTimeout bounds every GitHub API call.
const requestTimeout = 30 * time.Second

// ErrNoToken is returned when remote creation is attempted without a
// configured API token.
var ErrNoToken = errors.New("no github token configured")

// RemoteCreator creates a hosted repository and wires it up as the "origin"
// remote of a local repository.
type RemoteCreator struct {
	client *gh.Client
}

// NewRemoteCreator returns a RemoteCreator authenticated with the given
// token. An empty token yields a creator whose Create always fails with
// ErrNoToken; callers treat that as an advisory failure.
func NewRemoteCreator(token string) *RemoteCreator {
	if token == "" {
		return &RemoteCreator{}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = requestTimeout
	return &RemoteCreator{client: gh.NewClient(tc)}
}

// NewRemoteCreatorWithHTTPClient builds a creator on top of a prepared HTTP
// client. Used by tests to point the API at a local server.
func NewRemoteCreatorWithHTTPClient(httpClient *http.Client, baseURL string) (*RemoteCreator, error) {
	client, err := gh.NewClient(httpClient).WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("configuring API base URL: %w", err)
	}
	return &RemoteCreator{client: client}, nil
}

// Create creates a repository named after the package on the hosting service
// and registers it as the "origin" remote of the local repository at pkgDir.
// It returns the clone URL of the new repository.
func (rc *RemoteCreator) Create(ctx context.Context, pkgDir, name string) (string, error) {
	if rc.client == nil {
		return "", ErrNoToken
	}

	created, _, err := rc.client.Repositories.Create(ctx, "", &gh.Repository{
		Name:    gh.Ptr(name),
		Private: gh.Ptr(false),
	})
	if err != nil {
		return "", fmt.Errorf("creating remote repository %q: %w", name, err)
	}

	cloneURL := created.GetCloneURL()
	if cloneURL == "" {
		return "", fmt.Errorf("remote repository %q has no clone URL", name)
	}

	repo, err := git.PlainOpen(pkgDir)
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", pkgDir, err)
	}
	if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{cloneURL},
	}); err != nil {
		return "", fmt.Errorf("adding origin remote: %w", err)
	}

	return cloneURL, nil
}
