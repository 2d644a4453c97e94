//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
)

// StubParserRepository implements repositories.ParserRepository by returning the configured
// snapshots in call order.
type StubParserRepository struct {
	ValidateErr error
	Snapshots   []*entities.Snapshot
	ParseErr    error

	// spy
	ParsedLines [][]string
}

var _ repositories.ParserRepository = (*StubParserRepository)(nil)

func (p *StubParserRepository) Validate(_ []string) error { return p.ValidateErr }

func (p *StubParserRepository) Parse(lines []string) (*entities.Snapshot, error) {
	p.ParsedLines = append(p.ParsedLines, lines)
	if p.ParseErr != nil {
		return nil, p.ParseErr
	}

	call := len(p.ParsedLines) - 1
	if call >= len(p.Snapshots) {
		return entities.NewSnapshot(), nil
	}
	return p.Snapshots[call], nil
}
