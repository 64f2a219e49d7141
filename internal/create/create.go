package create

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkgmint-labs/pkgmint/internal/availability"
	"github.com/pkgmint-labs/pkgmint/internal/request"
)

// Error kinds for the aborting failures of a run.
var (
	ErrDirectoryExists = errors.New("directory already exists")
	ErrSkeletonFailed  = errors.New("skeleton creation failed")
	ErrMetadataFailed  = errors.New("metadata write failed")
)

// CommitMessage is used for the initial commit of the version-control step.
const CommitMessage = "Initial package structure"

// Warning records one degraded (non-aborting) step failure.
type Warning struct {
	Step    Step
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Step, w.Message)
}

// Result is returned on successful completion of a run. Warnings list the
// soft-failed steps; Success is true whenever a Result is returned at all.
type Result struct {
	Path        string
	PackageName string
	Success     bool
	Warnings    []Warning
}

// Runner executes the creation steps for one request against its
// collaborators. A Runner is stateless across runs.
type Runner struct {
	c Collaborators
}

// NewRunner returns a Runner bound to the given collaborators.
func NewRunner(c Collaborators) *Runner {
	return &Runner{c: c}
}

// Run validates the request and executes the creation sequence. Validation
// failures and hard step failures return an error without a Result; soft step
// failures are collected as warnings on the returned Result.
func (r *Runner) Run(ctx context.Context, req *request.Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	path, err := filepath.Abs(req.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", req.Path, err)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryExists, path)
	}

	name := req.PackageName()
	given, family, err := req.AuthorParts()
	if err != nil {
		return nil, err
	}

	result := &Result{Path: path, PackageName: name}

	steps := []struct {
		step    Step
		enabled bool
		run     func() error
	}{
		{StepNameCheck, req.CheckName, func() error {
			return r.checkName(ctx, name)
		}},
		{StepSkeleton, true, func() error {
			warnings, err := r.c.Skeleton.Create(req, path)
			for _, w := range warnings {
				result.Warnings = append(result.Warnings, Warning{StepSkeleton, w})
			}
			if err != nil {
				return fmt.Errorf("%w: package %q: %w", ErrSkeletonFailed, name, err)
			}
			return nil
		}},
		{StepMetadata, true, func() error {
			if err := r.c.Metadata.SetAuthor(path, given, family, req.Email); err != nil {
				return fmt.Errorf("%w: package %q: %w", ErrMetadataFailed, name, err)
			}
			return nil
		}},
		{StepReadme, req.Readme, func() error {
			return r.c.Readme.Create(req, path)
		}},
		{StepLicense, true, func() error {
			return r.c.License.Apply(req.License, req.Author, path)
		}},
		{StepVersionControl, req.Git, func() error {
			return r.setupVersionControl(ctx, req, path, name, result)
		}},
		{StepDocSite, req.DocSite, func() error {
			if err := r.c.DocSite.Setup(path); err != nil {
				return err
			}
			return r.c.DocSite.Build(path)
		}},
	}

	for _, s := range steps {
		if !s.enabled {
			continue
		}
		err := s.run()
		if err == nil {
			continue
		}
		if policyFor(s.step) == PolicyHard {
			// No automatic cleanup: a partially created directory may be
			// left behind for the user to inspect and remove.
			return nil, err
		}
		result.Warnings = append(result.Warnings, Warning{s.step, err.Error()})
	}

	result.Success = true
	return result, nil
}

// checkName runs the advisory availability lookup. A taken name is reported
// the same way a lookup failure is: as a warning via the step policy.
func (r *Runner) checkName(ctx context.Context, name string) error {
	status, err := r.c.NameCheck.Check(ctx, name)
	if err != nil {
		return fmt.Errorf("availability lookup failed: %w", err)
	}
	if status == availability.StatusTaken {
		return fmt.Errorf("name %q appears to be taken", name)
	}
	return nil
}

// setupVersionControl initializes the local repository, applies the user
// identity, and commits. Remote creation failing is recorded as its own
// warning and never fails the local setup.
func (r *Runner) setupVersionControl(ctx context.Context, req *request.Request, path, name string, result *Result) error {
	if err := r.c.Git.Init(path); err != nil {
		return err
	}
	if req.GitUsername != "" || req.GitEmail != "" {
		if err := r.c.Git.Configure(path, req.GitUsername, req.GitEmail); err != nil {
			return err
		}
	}
	if err := r.c.Git.CommitAll(path, CommitMessage); err != nil {
		return err
	}

	if r.c.Remote != nil {
		if _, err := r.c.Remote.Create(ctx, path, name); err != nil {
			result.Warnings = append(result.Warnings, Warning{StepRemoteRepo, err.Error()})
		}
	}
	return nil
}
