// Package license writes the LICENSE file of a generated package from
// embedded license texts, filling in the copyright holder and year.
package license
