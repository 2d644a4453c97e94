package commands

import (
	"context"
	"io"

	"github.com/dustin/go-humanize"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gradlediff/internal/infrastructure/repositories"
)

// Diff is the interface for the diff command.
type Diff interface {
	Execute(ctx context.Context, settings *entities.Settings, opts DiffOptions) error
}

// DiffOptions holds runtime options for a single comparison.
type DiffOptions struct {
	Before entities.ReportSource
	After  entities.ReportSource
	Stdout io.Writer // Destination when the settings resolve to stdout (default os.Stdout)
}

// DiffCommand orchestrates the comparison of two reports:
// read both -> parse both -> compare -> filter -> render.
type DiffCommand struct {
	reportRegistry   *infraRepos.ReportRegistry
	rendererRegistry *infraRepos.RendererRegistry
	parser           repositories.ParserRepository
}

// NewDiffCommand creates a new DiffCommand.
func NewDiffCommand(
	reportRegistry *infraRepos.ReportRegistry,
	rendererRegistry *infraRepos.RendererRegistry,
	parser repositories.ParserRepository,
) *DiffCommand {
	return &DiffCommand{
		reportRegistry:   reportRegistry,
		rendererRegistry: rendererRegistry,
		parser:           parser,
	}
}

// Execute compares the two reports and renders the result.
func (it *DiffCommand) Execute(ctx context.Context, settings *entities.Settings, opts DiffOptions) error {
	filter, err := settings.Filter()
	if err != nil {
		return err
	}

	renderer, err := it.rendererRegistry.Get(settings.Format)
	if err != nil {
		return err
	}

	before, err := loadSnapshot(ctx, it.reportRegistry, it.parser, opts.Before)
	if err != nil {
		return err
	}
	logger.Infof("Parsed %s dependencies from %q", humanize.Comma(int64(before.Len())), opts.Before)

	after, err := loadSnapshot(ctx, it.reportRegistry, it.parser, opts.After)
	if err != nil {
		return err
	}
	logger.Infof("Parsed %s dependencies from %q", humanize.Comma(int64(after.Len())), opts.After)

	records, err := entities.Compare(before, after)
	if err != nil {
		return err
	}

	records = filter.Apply(records)
	if settings.ShouldSort() {
		entities.SortRecords(records)
	}

	changed := 0
	for _, record := range records {
		if record.Changed {
			changed++
		}
	}
	logger.Infof("Reporting %s dependencies, %s changed", humanize.Comma(int64(len(records))), humanize.Comma(int64(changed)))

	return writeOutput(settings.ReportPath(), opts.Stdout, func(w io.Writer) error {
		return renderer.Render(w, records)
	})
}
