package gradle

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
)

// ErrDecode is returned for a dependency line that carries no "namespace:name" coordinates.
var ErrDecode = errors.New("invalid dependency line")

const (
	arrowToken       = " -> "
	specifierToken   = " ("
	projectPrefix    = "project "
	projectNamespace = "project"
	failedMarker     = "FAILED"
)

// DecodeLine extracts the coordinates and version readings of one dependency line, such as
// "|    +--- io.github.openfeign:feign-core:4.0.3 -> 4.0.4 (*)".
func DecodeLine(line string) (entities.ParsedDependency, error) {
	arrowIdx := strings.Index(line, arrowToken)

	// the coordinates on the left of the arrow; substitutions may carry other coordinates on the right
	coordinates := line
	if arrowIdx >= 0 {
		coordinates = line[:arrowIdx]
	}

	nameStart := strings.IndexByte(coordinates, ':')
	if nameStart < 0 {
		return entities.ParsedDependency{}, fmt.Errorf("%w: no colon in %q", ErrDecode, line)
	}

	namespaceStart := strings.IndexFunc(line[:nameStart], unicode.IsLetter)
	if namespaceStart < 0 {
		namespaceStart = nameStart
	}
	namespace := strings.TrimSpace(line[namespaceStart:nameStart])

	// sibling projects, e.g. "+--- project :libs:core (*)"
	if strings.HasPrefix(line[namespaceStart:], projectPrefix) {
		path := coordinates[nameStart:]
		if space := strings.IndexByte(path, ' '); space >= 0 {
			path = path[:space]
		}
		return entities.ParsedDependency{
			Name:       path,
			Namespace:  projectNamespace,
			Transitive: entities.NoVersion(),
			Pinned:     entities.NoVersion(),
		}, nil
	}

	offset := nameStart + 1
	nameEnd, singleColon := len(coordinates), true
	if secondColon := strings.IndexByte(coordinates[offset:], ':'); secondColon >= 0 {
		nameEnd, singleColon = offset+secondColon, false
	} else if space := strings.IndexByte(coordinates[offset:], ' '); space >= 0 {
		nameEnd = offset + space
	}

	parsed := entities.ParsedDependency{
		Name:       strings.TrimSpace(line[offset:nameEnd]),
		Namespace:  namespace,
		Transitive: entities.NoVersion(),
		Pinned:     entities.NoVersion(),
	}

	if arrowIdx >= 0 {
		pinnedStart := arrowIdx + len(arrowToken)
		if text := cleanVersion(segment(line, pinnedStart, specifierIndex(line, pinnedStart))); text != "" {
			parsed.Pinned = entities.NewPinned(text)
		}
	}

	if !singleColon {
		transitiveStart := nameEnd + 1
		text := cleanVersion(segment(line, transitiveStart, arrowIdx, specifierIndex(line, transitiveStart)))
		if text != "" {
			parsed.Transitive = entities.NewTransitive(text)
		}
	}

	return parsed, nil
}

// segment returns the trimmed text from start up to the earliest stop found after start.
// Negative stops mean "not present".
func segment(line string, start int, stops ...int) string {
	end := len(line)
	for _, stop := range stops {
		if stop >= start && stop < end {
			end = stop
		}
	}
	if start > end {
		return ""
	}
	return strings.TrimSpace(line[start:end])
}

// specifierIndex locates the trailing specifier (" (*)", " (c)", ...) of the version starting at from.
// A rich version may itself hold " (", so the search starts after its closing brace.
func specifierIndex(line string, from int) int {
	if from < len(line) && strings.HasPrefix(strings.TrimLeft(line[from:], " "), "{") {
		if closing := indexFrom(line, from, "}"); closing >= 0 {
			from = closing
		}
	}
	return indexFrom(line, from, specifierToken)
}

// indexFrom is strings.Index starting at from, returning an absolute index or -1.
func indexFrom(line string, from int, token string) int {
	if from > len(line) {
		return -1
	}
	idx := strings.Index(line[from:], token)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// richVersionKeywords open the first clause of a rich version, e.g. "{strictly 1.0}".
var richVersionKeywords = []string{"strictly", "require", "prefer"}

// cleanVersion drops the FAILED marker of unresolved dependencies, keeps only the version of a
// module substitution ("-> org.hamcrest:hamcrest:2.2") and reduces rich versions
// ("{strictly 1.0}", "{require 1.0; reject 1.1}") to the version of their first clause.
// Ranges such as "[1.0, 2.0)" or "(1.0,2.0]" are kept as written.
func cleanVersion(text string) string {
	text = strings.TrimSpace(strings.TrimSuffix(text, failedMarker))
	if colon := strings.LastIndexByte(text, ':'); colon >= 0 && !strings.HasPrefix(text, "{") {
		text = text[colon+1:]
	}

	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return text
	}

	constraint, _, _ := strings.Cut(text[1:len(text)-1], ";")
	constraint = strings.TrimSpace(constraint)
	for _, keyword := range richVersionKeywords {
		if rest, found := strings.CutPrefix(constraint, keyword); found && (rest == "" || rest[0] == ' ') {
			constraint = strings.TrimSpace(rest)
			break
		}
	}

	if isRange(constraint) {
		return constraint
	}
	fields := strings.Fields(constraint)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// isRange reports whether the text is a Maven-style range ("[1.0, 2.0)", "]1.0,)").
func isRange(text string) bool {
	return strings.HasPrefix(text, "[") || strings.HasPrefix(text, "(") || strings.HasPrefix(text, "]")
}
