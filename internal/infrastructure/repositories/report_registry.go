package repositories

import (
	"fmt"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gradlediff/internal/domain/repositories"
)

// ReportRegistry manages the places dependency reports can be read from.
type ReportRegistry struct {
	reports []domainRepos.ReportRepository
}

// NewReportRegistry creates an empty report registry.
func NewReportRegistry() *ReportRegistry {
	return &ReportRegistry{}
}

// Register adds a report repository. Earlier registrations take precedence.
func (r *ReportRegistry) Register(report domainRepos.ReportRepository) {
	r.reports = append(r.reports, report)
}

// For returns the first repository able to read the given source.
func (r *ReportRegistry) For(source entities.ReportSource) (domainRepos.ReportRepository, error) {
	for _, report := range r.reports {
		if report.Supports(source) {
			return report, nil
		}
	}
	return nil, fmt.Errorf("no report repository can read %q", source)
}

// Names returns the list of registered repository names.
func (r *ReportRegistry) Names() []string {
	names := make([]string, 0, len(r.reports))
	for _, report := range r.reports {
		names = append(names, report.Name())
	}
	return names
}
