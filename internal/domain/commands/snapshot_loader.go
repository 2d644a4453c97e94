package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gradlediff/internal/infrastructure/repositories"
)

// loadSnapshot reads, validates, and parses one report.
func loadSnapshot(
	ctx context.Context,
	reportRegistry *infraRepos.ReportRegistry,
	parser repositories.ParserRepository,
	source entities.ReportSource,
) (*entities.Snapshot, error) {
	report, err := reportRegistry.For(source)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Reading %q with the %s repository", source, report.Name())
	lines, err := report.Lines(ctx, source)
	if err != nil {
		return nil, err
	}

	if validateErr := parser.Validate(lines); validateErr != nil {
		return nil, fmt.Errorf("provided report %q is invalid: %w", source, validateErr)
	}

	snapshot, err := parser.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", source, err)
	}
	return snapshot, nil
}

// writeOutput hands render a file at path, or stdout when path is empty.
func writeOutput(path string, stdout io.Writer, render func(w io.Writer) error) error {
	if path == "" {
		if stdout == nil {
			stdout = os.Stdout
		}
		return render(stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}

	if renderErr := render(file); renderErr != nil {
		_ = file.Close()
		return renderErr
	}
	if closeErr := file.Close(); closeErr != nil {
		return fmt.Errorf("failed to write %q: %w", path, closeErr)
	}

	logger.Infof("Report written to %s", path)
	return nil
}
