package entities

import "slices"

// ParsedDependency is one decoded dependency line, before it is merged into a snapshot.
type ParsedDependency struct {
	Name       string
	Namespace  string
	Transitive Version
	Pinned     Version
}

// ConfigurationVersions holds every transitive reading seen for one dependency in one
// configuration (in first-sighting order) and the greatest pinned reading.
type ConfigurationVersions struct {
	Transitive []Version `json:"transitive" yaml:"transitive"`
	Pinned     Version   `json:"pinned"     yaml:"pinned"`
}

// ContainsTransitive reports whether the reading is already recorded.
func (it *ConfigurationVersions) ContainsTransitive(version Version) bool {
	return slices.Contains(it.Transitive, version)
}

// Effective returns the version in force: the pinned reading when present, otherwise the greatest transitive one.
func (it *ConfigurationVersions) Effective() (Version, error) {
	if it.Pinned.IsApplicable() {
		return it.Pinned, nil
	}
	return Greatest(it.Transitive)
}

// ConfigurationEntry binds a Gradle configuration to the versions resolved in it.
type ConfigurationEntry struct {
	Configuration string                `json:"gradle_config_name" yaml:"gradle_config_name"`
	Versions      ConfigurationVersions `json:"versions"           yaml:"versions"`
}

// Dependency is a library seen in a report, keyed by name.
type Dependency struct {
	Name      string               `json:"name"           yaml:"name"`
	Namespace string               `json:"namespace"      yaml:"namespace"`
	Entries   []ConfigurationEntry `json:"gradle_entries" yaml:"gradle_entries"`
}

// Entry returns the entry for the given configuration, if any.
func (it *Dependency) Entry(configuration string) (*ConfigurationEntry, bool) {
	for i := range it.Entries {
		if it.Entries[i].Configuration == configuration {
			return &it.Entries[i], true
		}
	}
	return nil, false
}

// clone returns a deep copy so that callers of a built snapshot cannot reach the builder's state.
func (it *Dependency) clone() Dependency {
	entries := make([]ConfigurationEntry, len(it.Entries))
	for i, entry := range it.Entries {
		entries[i] = ConfigurationEntry{
			Configuration: entry.Configuration,
			Versions: ConfigurationVersions{
				Transitive: slices.Clone(entry.Versions.Transitive),
				Pinned:     entry.Versions.Pinned,
			},
		}
	}
	return Dependency{Name: it.Name, Namespace: it.Namespace, Entries: entries}
}
