// Package vcs provides the version-control integration for generated
// packages: local repository initialization, user configuration, and the
// initial commit via go-git, plus hosted remote creation via the GitHub API.
package vcs
