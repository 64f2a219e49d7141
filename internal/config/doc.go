// Package config manages user-level settings stored at ~/.pkgmint/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default author identity and the token used for remote repository creation.
package config
