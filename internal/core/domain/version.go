package domain

import (
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// DevVersion is the version reported by unpackaged builds. Dev builds never
// trigger version-based cache invalidation or update prompts.
const DevVersion = "dev"

// IsDevVersion reports whether v denotes an unpackaged development build.
func IsDevVersion(v string) bool {
	switch strings.TrimSpace(v) {
	case "", DevVersion, "development":
		return true
	}
	return false
}

// canonicalVersion normalizes a version string to the "vMAJOR.MINOR.PATCH"
// form expected by golang.org/x/mod/semver.
func canonicalVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		// Wrap keeps the sentinel in the chain for errors.Is.
		return "", zerr.With(zerr.Wrap(ErrInvalidVersion, "not a semantic version"), "version", v)
	}
	return v, nil
}

// CompareVersions compares two application version strings. It returns -1,
// 0 or +1 like semver.Compare, or an error if either string cannot be
// parsed.
func CompareVersions(a, b string) (int, error) {
	ca, err := canonicalVersion(a)
	if err != nil {
		return 0, err
	}
	cb, err := canonicalVersion(b)
	if err != nil {
		return 0, err
	}
	return semver.Compare(ca, cb), nil
}

// VersionNewer reports whether version a is strictly newer than version b.
func VersionNewer(a, b string) (bool, error) {
	cmp, err := CompareVersions(a, b)
	if err != nil {
		return false, err
	}
	return cmp > 0, nil
}
