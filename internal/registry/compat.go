package registry

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// engineVSCode is the engines map key declaring the supported host range.
const engineVSCode = "vscode"

// wildcardRange marks an extension version as compatible with every host.
const wildcardRange = "*"

// GetLatestCompatibleExtensionVersion fetches all versions of an extension
// and returns the first one whose engine range is supported by the configured
// APIVersion. The registry lists versions newest first and the scan preserves
// that order, so the first match is the latest compatible version. Returns
// (nil, nil) when no version is compatible.
func (c *Client) GetLatestCompatibleExtensionVersion(ctx context.Context, id string) (*Extension, error) {
	versions, err := c.GetAllVersions(ctx, id)
	if err != nil {
		return nil, err
	}

	for i := range versions {
		if c.SupportsEngineRange(versions[i].Engines) {
			return &versions[i], nil
		}
	}
	c.logger.Debug("no compatible version", "id", id, "apiVersion", c.cfg.APIVersion, "candidates", len(versions))
	return nil, nil
}

// LatestCompatibleVersion scans a caller-supplied version listing and returns
// the first entry whose engine range is supported, or nil when none is. No
// network call is made and the input order is preserved.
func (c *Client) LatestCompatibleVersion(entries []VersionEntry) *VersionEntry {
	for i := range entries {
		if c.SupportsEngineRange(entries[i].Engines) {
			return &entries[i]
		}
	}
	return nil
}

// SupportsEngineRange reports whether the configured APIVersion satisfies the
// vscode engine range in engines. A missing range is never supported; the
// wildcard "*" is always supported; anything else goes through semver range
// matching. Unparseable ranges or API versions count as unsupported.
func (c *Client) SupportsEngineRange(engines map[string]string) bool {
	rng, ok := engines[engineVSCode]
	if !ok || rng == "" {
		return false
	}
	if rng == wildcardRange {
		return true
	}

	constraint, err := semver.NewConstraint(rng)
	if err != nil {
		c.logger.Debug("unparseable engine range", "range", rng, "error", err)
		return false
	}
	version, err := semver.NewVersion(strings.TrimPrefix(c.cfg.APIVersion, "v"))
	if err != nil {
		c.logger.Debug("unparseable api version", "version", c.cfg.APIVersion, "error", err)
		return false
	}
	return constraint.Check(version)
}
