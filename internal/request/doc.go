// Package request defines the validated intent to create one package. It holds
// the Request model, the fail-fast input validation that must pass before any
// filesystem or network side effect, and the author-name decomposition shared
// by validation and manifest writing.
package request
