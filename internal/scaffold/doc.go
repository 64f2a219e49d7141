// Package scaffold generates the base layout of a new package from embedded
// templates. It powers the "pkgmint new" command, producing the manifest,
// namespace file, source directory, and optional README with pre-filled
// metadata.
package scaffold
