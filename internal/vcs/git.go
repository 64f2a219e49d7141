package vcs

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Fallback identity used for the initial commit when no user is configured.
const (
	fallbackName  = "pkgmint"
	fallbackEmail = "pkgmint@localhost"
)

// Init initializes an empty git repository at pkgDir.
func Init(pkgDir string) error {
	if _, err := git.PlainInit(pkgDir, false); err != nil {
		if errors.Is(err, git.ErrRepositoryAlreadyExists) {
			return fmt.Errorf("%s is already a git repository", pkgDir)
		}
		return fmt.Errorf("initializing repository at %s: %w", pkgDir, err)
	}
	return nil
}

// Configure sets the repository-local user.name and user.email. Empty values
// leave the corresponding setting untouched.
func Configure(pkgDir, username, email string) error {
	repo, err := git.PlainOpen(pkgDir)
	if err != nil {
		return fmt.Errorf("opening repository at %s: %w", pkgDir, err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("reading repository config: %w", err)
	}

	if username != "" {
		cfg.User.Name = username
	}
	if email != "" {
		cfg.User.Email = email
	}

	if err := repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("writing repository config: %w", err)
	}
	return nil
}

// CommitAll stages every file in the worktree and creates a commit. The
// author is taken from the repository config, falling back to a neutral
// identity so the initial commit never fails on a missing user.
func CommitAll(pkgDir, message string) error {
	repo, err := git.PlainOpen(pkgDir)
	if err != nil {
		return fmt.Errorf("opening repository at %s: %w", pkgDir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}

	sig, err := commitSignature(repo)
	if err != nil {
		return err
	}

	if _, err := wt.Commit(message, &git.CommitOptions{Author: sig}); err != nil {
		return fmt.Errorf("creating commit: %w", err)
	}
	return nil
}

func commitSignature(repo *git.Repository) (*object.Signature, error) {
	cfg, err := repo.Config()
	if err != nil {
		return nil, fmt.Errorf("reading repository config: %w", err)
	}

	name, email := cfg.User.Name, cfg.User.Email
	if name == "" {
		name = fallbackName
	}
	if email == "" {
		email = fallbackEmail
	}

	return &object.Signature{Name: name, Email: email, When: time.Now()}, nil
}
