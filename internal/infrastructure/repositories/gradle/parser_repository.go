package gradle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
)

// ErrInvalidReport is returned when the input does not look like a Gradle dependencies report.
var ErrInvalidReport = errors.New("not a Gradle dependencies report")

const (
	taskMarker = "> Task :dependencies"
	// validationWindow is how many non-empty lines are sniffed for a report header.
	validationWindow = 10
)

// ParserRepository parses the text output of "gradle dependencies".
type ParserRepository struct{}

var _ repositories.ParserRepository = (*ParserRepository)(nil)

// NewParserRepository creates a Gradle report parser.
func NewParserRepository() *ParserRepository {
	return &ParserRepository{}
}

// Validate checks that one of the first non-empty lines is the task banner or the root project marker.
func (it *ParserRepository) Validate(lines []string) error {
	seen := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		if strings.Contains(line, taskMarker) || strings.Contains(line, rootProjectMarker) {
			return nil
		}
		seen++
		if seen == validationWindow {
			break
		}
	}
	return fmt.Errorf("%w: no %q or %q line in the first %d non-empty lines",
		ErrInvalidReport, taskMarker, rootProjectMarker, validationWindow)
}

// Parse runs the lines through the classifier and merges every dependency line into a snapshot.
func (it *ParserRepository) Parse(lines []string) (*entities.Snapshot, error) {
	classifier := NewClassifier()
	builder := entities.NewSnapshotBuilder()
	configuration := ""
	decoded := 0

	for number, line := range lines {
		classification := classifier.Next(line)

		switch classification.Kind {
		case LineConfigurationHeader:
			configuration = classification.Configuration
			logger.Debugf("Reading configuration %q", configuration)

		case LineDependency:
			parsed, err := DecodeLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", number+1, err)
			}
			if mergeErr := builder.Merge(configuration, parsed); mergeErr != nil {
				return nil, fmt.Errorf("line %d: %w", number+1, mergeErr)
			}
			decoded++

		case LineSkipped, LineRootMarker, LineNoDependencies, LineTerminator:
		}

		if classifier.State().Kind() == StateEnd {
			break
		}
	}

	snapshot := builder.Build()
	logger.Debugf(
		"Parsed %s lines: %s dependency lines, %s distinct dependencies",
		humanize.Comma(int64(len(lines))), humanize.Comma(int64(decoded)), humanize.Comma(int64(snapshot.Len())),
	)
	return snapshot, nil
}
