package gradle

import (
	"fmt"
	"strings"
)

const (
	rootProjectMarker = "Root project"
	noDependencies    = "No dependencies"
	terminatorPrefix  = "("

	// dependencyGlyphs are the first non-blank characters of a dependency line:
	//   \--- com.h2database:h2 (n)
	//   +--- org.openapitools:openapi-generator-gradle-plugin:7.0.1
	//   |    +--- org.apache.commons:commons-text:1.10.0
	//   No dependencies
	dependencyGlyphs = `\+|N`

	// rootBoilerplateLines follow the root project marker (a dashed rule and a blank line).
	rootBoilerplateLines = 2
	// noDependenciesTrailingLines follow a "No dependencies" sentinel (the separating blank line).
	noDependenciesTrailingLines = 1
)

// StateKind enumerates the positions of the classifier in a report.
type StateKind int

const (
	StateSeekingRoot StateKind = iota
	StateSkippingFixedCount
	StateAwaitingTaskOrDependency
	StateEnd
)

// State is a classifier state. Only StateSkippingFixedCount carries data (the lines left to skip).
type State struct {
	kind      StateKind
	remaining int
}

// SeekingRoot is the initial state: everything is ignored until the root project marker.
func SeekingRoot() State {
	return State{kind: StateSeekingRoot}
}

// SkippingFixedCount discards the next n lines. A non-positive count is already done skipping.
func SkippingFixedCount(n int) State {
	if n <= 0 {
		return AwaitingTaskOrDependency()
	}
	return State{kind: StateSkippingFixedCount, remaining: n}
}

// AwaitingTaskOrDependency reads configuration headers and dependency lines.
func AwaitingTaskOrDependency() State {
	return State{kind: StateAwaitingTaskOrDependency}
}

// End is terminal: the remaining lines carry no dependency tree.
func End() State {
	return State{kind: StateEnd}
}

// Kind returns the state tag.
func (s State) Kind() StateKind {
	return s.kind
}

// Remaining returns the lines left to skip (zero outside StateSkippingFixedCount).
func (s State) Remaining() int {
	return s.remaining
}

func (s State) String() string {
	switch s.kind {
	case StateSeekingRoot:
		return "SeekingRoot"
	case StateSkippingFixedCount:
		return fmt.Sprintf("SkippingFixedCount(%d)", s.remaining)
	case StateAwaitingTaskOrDependency:
		return "AwaitingTaskOrDependency"
	case StateEnd:
		return "End"
	default:
		return fmt.Sprintf("State(%d)", s.kind)
	}
}

// LineKind is the category a line was classified into.
type LineKind int

const (
	LineSkipped LineKind = iota
	LineRootMarker
	LineConfigurationHeader
	LineDependency
	LineNoDependencies
	LineTerminator
)

func (k LineKind) String() string {
	switch k {
	case LineSkipped:
		return "skipped"
	case LineRootMarker:
		return "root-marker"
	case LineConfigurationHeader:
		return "configuration-header"
	case LineDependency:
		return "dependency"
	case LineNoDependencies:
		return "no-dependencies"
	case LineTerminator:
		return "terminator"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// Classification is the outcome of feeding one line to the classifier.
type Classification struct {
	Kind          LineKind
	Configuration string // set for LineConfigurationHeader
}

// Classifier is the line state machine of a Gradle dependencies report.
// Lines must be fed strictly in report order.
type Classifier struct {
	state State
}

// NewClassifier creates a classifier in the SeekingRoot state.
func NewClassifier() *Classifier {
	return &Classifier{state: SeekingRoot()}
}

// State returns the current state.
func (it *Classifier) State() State {
	return it.state
}

// Next classifies one line and advances the state.
func (it *Classifier) Next(line string) Classification {
	switch it.state.kind {
	case StateEnd:
		return Classification{Kind: LineSkipped}
	case StateSkippingFixedCount:
		it.state = SkippingFixedCount(it.state.remaining - 1)
		return Classification{Kind: LineSkipped}
	case StateSeekingRoot, StateAwaitingTaskOrDependency:
	}

	if strings.HasPrefix(line, rootProjectMarker) {
		it.state = SkippingFixedCount(rootBoilerplateLines)
		return Classification{Kind: LineRootMarker}
	}

	trimmed := strings.TrimSpace(line)
	if it.state.kind == StateSeekingRoot || trimmed == "" {
		return Classification{Kind: LineSkipped}
	}

	// constraint and version-alignment footnotes follow the tree, e.g. "(c) - dependency constraint"
	if strings.HasPrefix(line, terminatorPrefix) {
		it.state = End()
		return Classification{Kind: LineTerminator}
	}

	if strings.IndexByte(dependencyGlyphs, trimmed[0]) >= 0 {
		if trimmed == noDependencies {
			it.state = SkippingFixedCount(noDependenciesTrailingLines)
			return Classification{Kind: LineNoDependencies}
		}
		return Classification{Kind: LineDependency}
	}

	name, _, _ := strings.Cut(line, " ")
	return Classification{Kind: LineConfigurationHeader, Configuration: name}
}
