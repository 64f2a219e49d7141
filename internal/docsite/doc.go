// Package docsite builds the static documentation site of a package: a
// docsite.yaml configuration plus an HTML rendering of the README under docs/.
package docsite
