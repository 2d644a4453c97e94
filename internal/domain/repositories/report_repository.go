package repositories

import (
	"context"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
)

// ReportRepository abstracts where a dependency report is read from (a local file, a Git revision, etc.).
type ReportRepository interface {
	// Name returns the repository identifier (e.g. "file", "git").
	Name() string

	// Supports returns true if this repository can read the given source.
	Supports(source entities.ReportSource) bool

	// Lines returns the report content as an ordered sequence of lines, without line terminators.
	Lines(ctx context.Context, source entities.ReportSource) ([]string, error)
}
