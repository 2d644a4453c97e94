package repositories

import "github.com/rios0rios0/gradlediff/internal/domain/entities"

// ParserRepository turns the lines of one dependency report into a snapshot.
type ParserRepository interface {
	// Validate checks that the lines look like a dependency report before parsing them.
	Validate(lines []string) error

	// Parse consumes the lines in order and returns the completed snapshot.
	// A report without a root project marker yields an empty snapshot.
	Parse(lines []string) (*entities.Snapshot, error)
}
