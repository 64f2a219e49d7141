// Package availability performs the advisory package-name lookup against the
// configured hosting service. Its results inform the user; they never block
// package creation.
package availability
