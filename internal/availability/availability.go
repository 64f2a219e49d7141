package availability

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

// requestTimeout bounds the search call; the check is advisory and must not
// hang the whole run.
const requestTimeout = 10 * time.Second

// Status is the outcome of a name lookup.
type Status int

const (
	// StatusAvailable means no repository with that exact name was found.
	StatusAvailable Status = iota
	// StatusTaken means at least one repository already uses the name.
	StatusTaken
)

// Checker looks up package names on the hosting service.
type Checker struct {
	client *gh.Client
}

// NewChecker returns a Checker. The token is optional; without it the lookup
// runs unauthenticated with the lower rate limit.
func NewChecker(token string) *Checker {
	if token == "" {
		return &Checker{client: gh.NewClient(nil)}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = requestTimeout
	return &Checker{client: gh.NewClient(tc)}
}

// NewCheckerWithHTTPClient builds a Checker on top of a prepared HTTP client.
// Used by tests to point the API at a local server.
func NewCheckerWithHTTPClient(httpClient *http.Client, baseURL string) (*Checker, error) {
	client, err := gh.NewClient(httpClient).WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("configuring API base URL: %w", err)
	}
	return &Checker{client: client}, nil
}

// Check searches the hosting service for repositories with the exact package
// name. Matching is case-insensitive because most registries treat names that
// collide in casing as the same name.
func (c *Checker) Check(ctx context.Context, name string) (Status, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	query := fmt.Sprintf("%s in:name", name)
	result, _, err := c.client.Search.Repositories(ctx, query, &gh.SearchOptions{
		ListOptions: gh.ListOptions{PerPage: 50},
	})
	if err != nil {
		return StatusAvailable, fmt.Errorf("searching for %q: %w", name, err)
	}

	for _, repo := range result.Repositories {
		if strings.EqualFold(repo.GetName(), name) {
			return StatusTaken, nil
		}
	}
	return StatusAvailable, nil
}
