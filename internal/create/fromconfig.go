package create

import (
	"context"

	"github.com/pkgmint-labs/pkgmint/internal/configfile"
)

// FromConfig loads a creation config file, resolves it into a request rooted
// at parentDir, and runs the creation. Config-loading and mapping errors
// abort before any collaborator is invoked. An empty format is inferred from
// the file extension.
func (r *Runner) FromConfig(ctx context.Context, configPath string, format configfile.Format, parentDir string) (*Result, error) {
	if format == "" {
		detected, err := configfile.DetectFormat(configPath)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	doc, err := configfile.Read(configPath, format)
	if err != nil {
		return nil, err
	}

	req, err := doc.ToRequest(parentDir)
	if err != nil {
		return nil, err
	}

	return r.Run(ctx, req)
}
