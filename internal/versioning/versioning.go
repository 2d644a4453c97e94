package versioning

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	mastermindsSemver "github.com/Masterminds/semver/v3"
	goVersion "github.com/hashicorp/go-version"
	"golang.org/x/mod/semver"
)

// ErrUncomparable is returned when a version string cannot be placed in an ordering.
var ErrUncomparable = errors.New("version is not comparable")

// NotApplicable is the display value of an absent version.
const NotApplicable = "N/A"

// dotQualifierPattern matches Maven-style qualifiers appended with a dot, e.g. "5.6.15.Final" or "2.0.RELEASE".
var dotQualifierPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)*)\.([A-Za-z][0-9A-Za-z.\-]*)$`)

// Bump classifies the change between two effective versions.
type Bump string

const (
	BumpNone    Bump = "none"
	BumpAdded   Bump = "added"
	BumpRemoved Bump = "removed"
	BumpMajor   Bump = "major"
	BumpMinor   Bump = "minor"
	BumpPatch   Bump = "patch"
	BumpOther   Bump = "other"
)

// Compare returns -1, 0 or +1 depending on whether a is lower, equal or greater than b.
func Compare(a, b string) (int, error) {
	// If both are valid semver, use semver comparison
	normA, normB := normalizeVersion(a), normalizeVersion(b)
	if semver.IsValid(normA) && semver.IsValid(normB) {
		return semver.Compare(normA, normB), nil
	}

	// Fall back to the lenient parser, which accepts any number of segments
	verA, err := parseLenient(a)
	if err != nil {
		return 0, err
	}
	verB, err := parseLenient(b)
	if err != nil {
		return 0, err
	}
	return verA.Compare(verB), nil
}

// IsGreater reports whether candidate is strictly greater than current.
func IsGreater(candidate, current string) (bool, error) {
	cmp, err := Compare(candidate, current)
	if err != nil {
		return false, err
	}
	return cmp > 0, nil
}

// Classify determines the type of change between the effective version before and after.
func Classify(before, after string) Bump {
	switch {
	case before == after:
		return BumpNone
	case before == NotApplicable:
		return BumpAdded
	case after == NotApplicable:
		return BumpRemoved
	}

	beforeVer, beforeErr := mastermindsSemver.NewVersion(toDashQualifier(before))
	afterVer, afterErr := mastermindsSemver.NewVersion(toDashQualifier(after))
	if beforeErr != nil || afterErr != nil {
		// Can't determine diff type for non-semver versions
		return BumpOther
	}

	switch {
	case beforeVer.Major() != afterVer.Major():
		return BumpMajor
	case beforeVer.Minor() != afterVer.Minor():
		return BumpMinor
	case beforeVer.Patch() != afterVer.Patch():
		return BumpPatch
	default:
		return BumpOther
	}
}

// ParseBump converts a user supplied name into a Bump.
func ParseBump(name string) (Bump, error) {
	bump := Bump(strings.ToLower(strings.TrimSpace(name)))
	switch bump {
	case BumpNone, BumpAdded, BumpRemoved, BumpMajor, BumpMinor, BumpPatch, BumpOther:
		return bump, nil
	default:
		return "", fmt.Errorf("unknown bump type %q", name)
	}
}

func parseLenient(version string) (*goVersion.Version, error) {
	parsed, err := goVersion.NewVersion(toDashQualifier(strings.TrimSpace(version)))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUncomparable, version)
	}
	return parsed, nil
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// toDashQualifier rewrites "1.2.3.Final" as "1.2.3-Final" so both parsers treat the suffix as a qualifier.
func toDashQualifier(version string) string {
	if match := dotQualifierPattern.FindStringSubmatch(version); match != nil {
		return match[1] + "-" + match[2]
	}
	return version
}
