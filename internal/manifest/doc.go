// Package manifest handles the pkgmint.yaml package manifest: its model,
// YAML parsing, JSON Schema validation, and the author-metadata rewrite
// performed right after skeleton creation.
package manifest
