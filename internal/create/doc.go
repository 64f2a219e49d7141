// Package create orchestrates the creation of one package: it validates the
// request, then drives the skeleton generator, metadata writer, and the
// optional README, license, version-control, and doc-site steps, applying a
// per-step hard/soft failure policy. Soft failures become warnings on the
// result; hard failures abort the run.
package create
