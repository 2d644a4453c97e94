package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
)

// maxLineSize bounds a single report line; deep trees produce long prefixes.
const maxLineSize = 1024 * 1024

// ReportRepository reads dependency reports from the local file system.
type ReportRepository struct{}

var _ repositories.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository creates a file system report repository.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

// Name returns the repository identifier.
func (it *ReportRepository) Name() string { return "file" }

// Supports returns true for sources that are not bound to a Git revision.
func (it *ReportRepository) Supports(source entities.ReportSource) bool {
	return source.Revision == ""
}

// Lines reads the whole file, line by line.
func (it *ReportRepository) Lines(ctx context.Context, source entities.ReportSource) ([]string, error) {
	file, err := os.Open(source.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report %q: %w", source.Path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warnf("Failed to close report %q: %v", source.Path, closeErr)
		}
	}()

	lines, err := ReadLines(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %q: %w", source.Path, err)
	}
	return lines, nil
}

// ReadLines splits the reader into lines, dropping "\n" and "\r\n" terminators.
func ReadLines(ctx context.Context, reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	var lines []string
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
