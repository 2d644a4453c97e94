package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/gradlediff/internal/domain/repositories"
	fileRepo "github.com/rios0rios0/gradlediff/internal/infrastructure/repositories/file"
	gitRepo "github.com/rios0rios0/gradlediff/internal/infrastructure/repositories/git"
	gradleRepo "github.com/rios0rios0/gradlediff/internal/infrastructure/repositories/gradle"
	"github.com/rios0rios0/gradlediff/internal/infrastructure/repositories/renderers"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register report registry with every place a report can be read from
	if err := container.Provide(func() *ReportRegistry {
		reg := NewReportRegistry()
		reg.Register(gitRepo.NewReportRepository())
		reg.Register(fileRepo.NewReportRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register renderer registry with all output formats
	if err := container.Provide(func() (*RendererRegistry, error) {
		htmlRenderer, err := renderers.NewHTMLRenderer()
		if err != nil {
			return nil, err
		}

		reg := NewRendererRegistry()
		reg.Register(htmlRenderer)
		reg.Register(renderers.NewJSONRenderer())
		reg.Register(renderers.NewYAMLRenderer())
		reg.Register(renderers.NewTableRenderer())
		return reg, nil
	}); err != nil {
		return err
	}

	// Bind the Gradle parser to its interface
	if err := container.Provide(func() domainRepos.ParserRepository {
		return gradleRepo.NewParserRepository()
	}); err != nil {
		return err
	}

	return nil
}
