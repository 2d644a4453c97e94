package entities

import (
	"errors"
	"fmt"
)

// ErrSnapshotBuilt is returned when a builder is used after Build.
var ErrSnapshotBuilt = errors.New("snapshot already built")

// Snapshot is the read-only dependency map parsed from one report.
type Snapshot struct {
	names        []string
	dependencies map[string]*Dependency
}

// Len returns the number of distinct dependencies.
func (it *Snapshot) Len() int {
	if it == nil {
		return 0
	}
	return len(it.names)
}

// Names returns the dependency names in first-sighting order.
func (it *Snapshot) Names() []string {
	if it == nil {
		return nil
	}
	return append([]string(nil), it.names...)
}

// Get returns a copy of the dependency with the given name.
func (it *Snapshot) Get(name string) (Dependency, bool) {
	if it == nil {
		return Dependency{}, false
	}
	dependency, ok := it.dependencies[name]
	if !ok {
		return Dependency{}, false
	}
	return dependency.clone(), true
}

// Dependencies returns copies of every dependency in first-sighting order.
func (it *Snapshot) Dependencies() []Dependency {
	if it == nil {
		return nil
	}
	result := make([]Dependency, 0, len(it.names))
	for _, name := range it.names {
		result = append(result, it.dependencies[name].clone())
	}
	return result
}

// SnapshotBuilder accumulates decoded dependency lines of a single report.
// It is owned by exactly one parse and handed over as a Snapshot by Build.
type SnapshotBuilder struct {
	snapshot *Snapshot
}

// NewSnapshotBuilder creates an empty builder.
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		snapshot: &Snapshot{dependencies: make(map[string]*Dependency)},
	}
}

// Merge folds one decoded dependency line into the snapshot under the given configuration.
func (it *SnapshotBuilder) Merge(configuration string, parsed ParsedDependency) error {
	if it.snapshot == nil {
		return ErrSnapshotBuilt
	}

	existing, found := it.snapshot.dependencies[parsed.Name]
	if !found {
		it.snapshot.names = append(it.snapshot.names, parsed.Name)
		it.snapshot.dependencies[parsed.Name] = &Dependency{
			Name:      parsed.Name,
			Namespace: parsed.Namespace,
			Entries:   []ConfigurationEntry{newConfigurationEntry(configuration, parsed)},
		}
		return nil
	}

	entry, found := existing.Entry(configuration)
	if !found {
		existing.Entries = append(existing.Entries, newConfigurationEntry(configuration, parsed))
		return nil
	}

	return updateEntry(entry, parsed)
}

// Build hands over the accumulated snapshot. The builder cannot be used afterwards.
func (it *SnapshotBuilder) Build() *Snapshot {
	snapshot := it.snapshot
	it.snapshot = nil
	if snapshot == nil {
		return &Snapshot{dependencies: make(map[string]*Dependency)}
	}
	return snapshot
}

func newConfigurationEntry(configuration string, parsed ParsedDependency) ConfigurationEntry {
	return ConfigurationEntry{
		Configuration: configuration,
		Versions: ConfigurationVersions{
			Transitive: []Version{parsed.Transitive},
			Pinned:     parsed.Pinned,
		},
	}
}

// updateEntry keeps the greatest pinned reading and appends unseen transitive readings.
func updateEntry(entry *ConfigurationEntry, parsed ParsedDependency) error {
	if parsed.Pinned.IsApplicable() {
		if !entry.Versions.Pinned.IsApplicable() {
			entry.Versions.Pinned = parsed.Pinned
		} else {
			greater, err := parsed.Pinned.IsGreaterThan(entry.Versions.Pinned)
			if err != nil {
				return fmt.Errorf("failed to merge pinned version of %q in %q: %w", parsed.Name, entry.Configuration, err)
			}
			if greater {
				entry.Versions.Pinned = parsed.Pinned
			}
		}
	}

	if parsed.Transitive.IsApplicable() && !entry.Versions.ContainsTransitive(parsed.Transitive) {
		entry.Versions.Transitive = append(entry.Versions.Transitive, parsed.Transitive)
	}
	return nil
}

// NewSnapshot assembles a snapshot from already merged dependencies. Later duplicates replace earlier ones.
func NewSnapshot(dependencies ...Dependency) *Snapshot {
	snapshot := &Snapshot{dependencies: make(map[string]*Dependency, len(dependencies))}
	for _, dependency := range dependencies {
		if _, found := snapshot.dependencies[dependency.Name]; !found {
			snapshot.names = append(snapshot.names, dependency.Name)
		}
		copied := dependency.clone()
		snapshot.dependencies[dependency.Name] = &copied
	}
	return snapshot
}
