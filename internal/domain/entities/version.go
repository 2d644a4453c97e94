package entities

import (
	"fmt"

	"github.com/rios0rios0/gradlediff/internal/versioning"
)

// VersionKind tags the variant held by a Version.
type VersionKind int

const (
	// KindNotApplicable marks the absence of a version. It is the zero value.
	KindNotApplicable VersionKind = iota
	// KindTransitive marks a version reached by automatic resolution.
	KindTransitive
	// KindPinned marks the resolution target of a "->" arrow.
	KindPinned
)

// Version is a closed sum type: Transitive(text), Pinned(text) or NotApplicable.
// Two versions are equal when both the kind and the text are equal, so == can be used directly.
type Version struct {
	kind VersionKind
	text string
}

// NewTransitive builds a Transitive version.
func NewTransitive(text string) Version {
	return Version{kind: KindTransitive, text: text}
}

// NewPinned builds a Pinned version.
func NewPinned(text string) Version {
	return Version{kind: KindPinned, text: text}
}

// NoVersion returns the NotApplicable variant.
func NoVersion() Version {
	return Version{}
}

// Kind returns the variant tag.
func (v Version) Kind() VersionKind {
	return v.kind
}

// IsApplicable reports whether the version carries a value.
func (v Version) IsApplicable() bool {
	switch v.kind {
	case KindTransitive, KindPinned:
		return true
	case KindNotApplicable:
		return false
	default:
		panic(fmt.Sprintf("unknown version kind %d", v.kind))
	}
}

// String renders the payload, or "N/A" for the absent variant.
func (v Version) String() string {
	switch v.kind {
	case KindTransitive, KindPinned:
		return v.text
	case KindNotApplicable:
		return versioning.NotApplicable
	default:
		panic(fmt.Sprintf("unknown version kind %d", v.kind))
	}
}

// MarshalText encodes the version as its display string (used by JSON and YAML encoders).
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// IsGreaterThan reports whether v is strictly greater than other. Both must be applicable.
func (v Version) IsGreaterThan(other Version) (bool, error) {
	if !v.IsApplicable() || !other.IsApplicable() {
		return false, fmt.Errorf("%w: cannot order %q against %q", versioning.ErrUncomparable, v, other)
	}
	return versioning.IsGreater(v.text, other.text)
}

// Greatest returns the maximal applicable version of the list, or NotApplicable when none is applicable.
func Greatest(versions []Version) (Version, error) {
	var greatest Version
	for _, candidate := range versions {
		if !candidate.IsApplicable() {
			continue
		}
		if !greatest.IsApplicable() {
			greatest = candidate
			continue
		}

		greater, err := candidate.IsGreaterThan(greatest)
		if err != nil {
			return NoVersion(), err
		}
		if greater {
			greatest = candidate
		}
	}
	return greatest, nil
}
