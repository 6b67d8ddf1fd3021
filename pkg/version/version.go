// Package version exposes the build version of the paginator binary.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/rshade/paginator/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Set via ldflags.
var version = "v1.0.0-dev"

// GetVersion returns the raw build version string.
func GetVersion() string {
	return version
}

// Parsed returns the build version as a semantic version.
func Parsed() (*semver.Version, error) {
	return semver.NewVersion(version)
}

// IsRelease reports whether the build version is a valid semantic version
// without a pre-release suffix.
func IsRelease() bool {
	v, err := Parsed()
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// Satisfies reports whether the build version satisfies a semver constraint
// such as ">= 1.0.0". Pre-release builds are compared on their release part.
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}
	v, err := Parsed()
	if err != nil {
		return false, err
	}
	release, err := v.SetPrerelease("")
	if err != nil {
		return false, err
	}
	return c.Check(&release), nil
}
