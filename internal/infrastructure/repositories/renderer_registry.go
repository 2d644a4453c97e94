package repositories

import (
	"errors"
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/gradlediff/internal/domain/repositories"
)

// ErrUnknownFormat is returned when no renderer is registered under the requested format.
var ErrUnknownFormat = errors.New("unknown output format")

// RendererRegistry manages all registered output renderers.
type RendererRegistry struct {
	renderers map[string]domainRepos.RendererRepository
}

// NewRendererRegistry creates an empty renderer registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]domainRepos.RendererRepository),
	}
}

// Register adds a renderer under its name.
func (r *RendererRegistry) Register(renderer domainRepos.RendererRepository) {
	r.renderers[renderer.Name()] = renderer
}

// Get returns the renderer for the given format.
func (r *RendererRegistry) Get(format string) (domainRepos.RendererRepository, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFormat, format, r.Names())
	}
	return renderer, nil
}

// Names returns the sorted list of registered formats.
func (r *RendererRegistry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
