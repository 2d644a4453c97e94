//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gradlediff/internal/domain/commands"
	"github.com/rios0rios0/gradlediff/internal/domain/entities"
)

// StubParseCommand is a stub implementation of commands.Parse.
type StubParseCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ParseOptions
}

var _ commands.Parse = (*StubParseCommand)(nil)

func (s *StubParseCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ParseOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
