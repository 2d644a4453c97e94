//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
)

// StubReportRepository implements repositories.ReportRepository from in-memory reports keyed by path.
type StubReportRepository struct {
	RepositoryName string
	Reports        map[string][]string
	LinesErr       error

	// spy: sources that were read
	ReadSources []entities.ReportSource
}

var _ repositories.ReportRepository = (*StubReportRepository)(nil)

func (r *StubReportRepository) Name() string {
	if r.RepositoryName == "" {
		return "stub"
	}
	return r.RepositoryName
}

func (r *StubReportRepository) Supports(_ entities.ReportSource) bool { return true }

func (r *StubReportRepository) Lines(_ context.Context, source entities.ReportSource) ([]string, error) {
	r.ReadSources = append(r.ReadSources, source)
	if r.LinesErr != nil {
		return nil, r.LinesErr
	}
	return r.Reports[source.Path], nil
}
