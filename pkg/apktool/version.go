package apktool

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"

	errUtils "github.com/cloudposse/apkwrap/errors"
)

// ParseToolVersion parses the version string printed by `apktool --version`.
// Suffixes such as "-dirty" are kept as prerelease data.
func ParseToolVersion(raw string) (*semver.Version, error) {
	raw = strings.TrimSpace(raw)
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrInvalidVersion).
			WithCause(err).
			WithContext("version", raw).
			Err()
	}
	return v, nil
}

// CheckVersion verifies that the installed apktool satisfies constraint and
// returns the installed version.
func (c *Client) CheckVersion(ctx context.Context, constraint string) (*semver.Version, error) {
	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrInvalidOption).
			WithCause(err).
			WithContext("constraint", constraint).
			WithHint("Use a semver constraint such as `>= 2.9.0`").
			Err()
	}

	raw, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}
	v, err := ParseToolVersion(raw)
	if err != nil {
		return nil, err
	}

	if !cons.Check(v) {
		return v, errUtils.Build(errUtils.ErrUnsupportedVersion).
			WithContext("version", v.String()).
			WithContext("constraint", constraint).
			WithHintf("Install an apktool release matching `%s`", constraint).
			Err()
	}
	return v, nil
}
