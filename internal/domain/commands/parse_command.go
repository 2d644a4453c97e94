package commands

import (
	"context"
	"io"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gradlediff/internal/infrastructure/repositories"
)

// Parse is the interface for the parse command.
type Parse interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ParseOptions) error
}

// ParseOptions holds runtime options for dumping one report.
type ParseOptions struct {
	Source entities.ReportSource
	Stdout io.Writer
}

// ParseCommand parses a single report and renders the resulting snapshot.
type ParseCommand struct {
	reportRegistry   *infraRepos.ReportRegistry
	rendererRegistry *infraRepos.RendererRegistry
	parser           repositories.ParserRepository
}

// NewParseCommand creates a new ParseCommand.
func NewParseCommand(
	reportRegistry *infraRepos.ReportRegistry,
	rendererRegistry *infraRepos.RendererRegistry,
	parser repositories.ParserRepository,
) *ParseCommand {
	return &ParseCommand{
		reportRegistry:   reportRegistry,
		rendererRegistry: rendererRegistry,
		parser:           parser,
	}
}

// Execute parses the report and renders the snapshot.
func (it *ParseCommand) Execute(ctx context.Context, settings *entities.Settings, opts ParseOptions) error {
	renderer, err := it.rendererRegistry.Get(settings.Format)
	if err != nil {
		return err
	}

	snapshot, err := loadSnapshot(ctx, it.reportRegistry, it.parser, opts.Source)
	if err != nil {
		return err
	}

	return writeOutput(settings.ReportPath(), opts.Stdout, func(w io.Writer) error {
		return renderer.RenderSnapshot(w, snapshot)
	})
}
