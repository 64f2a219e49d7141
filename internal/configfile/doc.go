// Package configfile reads and writes the serialized creation configuration
// (YAML or JSON) and maps it onto a package creation request, applying the
// documented defaults for optional keys.
package configfile
