//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name      string
	namespace string
	entries   []entities.ConfigurationEntry
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "feign-core",
		namespace:   "io.github.openfeign",
	}
}

// WithName sets the dependency name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithNamespace sets the group the dependency belongs to.
func (b *DependencyBuilder) WithNamespace(namespace string) *DependencyBuilder {
	b.namespace = namespace
	return b
}

// WithTransitive adds an entry whose only reading is the given transitive version.
func (b *DependencyBuilder) WithTransitive(configuration, version string) *DependencyBuilder {
	return b.WithEntry(configuration, []string{version}, "")
}

// WithPinned adds an entry resolved to the given pinned version.
func (b *DependencyBuilder) WithPinned(configuration, transitive, pinned string) *DependencyBuilder {
	return b.WithEntry(configuration, []string{transitive}, pinned)
}

// WithEntry adds a configuration entry; empty strings stand for "not applicable".
func (b *DependencyBuilder) WithEntry(configuration string, transitive []string, pinned string) *DependencyBuilder {
	versions := entities.ConfigurationVersions{Pinned: entities.NoVersion()}
	for _, text := range transitive {
		if text == "" {
			versions.Transitive = append(versions.Transitive, entities.NoVersion())
			continue
		}
		versions.Transitive = append(versions.Transitive, entities.NewTransitive(text))
	}
	if pinned != "" {
		versions.Pinned = entities.NewPinned(pinned)
	}

	b.entries = append(b.entries, entities.ConfigurationEntry{Configuration: configuration, Versions: versions})
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	entries := make([]entities.ConfigurationEntry, len(b.entries))
	copy(entries, b.entries)
	return entities.Dependency{
		Name:      b.name,
		Namespace: b.namespace,
		Entries:   entries,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "feign-core"
	b.namespace = "io.github.openfeign"
	b.entries = nil
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	entries := make([]entities.ConfigurationEntry, len(b.entries))
	copy(entries, b.entries)
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		namespace:   b.namespace,
		entries:     entries,
	}
}
