package entities

import (
	"fmt"

	"github.com/rios0rios0/gradlediff/internal/versioning"
)

// ConfigurationDiff is the effective version of a dependency in one configuration, before and after.
type ConfigurationDiff struct {
	Configuration string          `json:"gradle_config_name" yaml:"gradle_config_name"`
	VersionBefore string          `json:"version_before"     yaml:"version_before"`
	VersionAfter  string          `json:"version_after"      yaml:"version_after"`
	Bump          versioning.Bump `json:"bump"               yaml:"bump"`
}

// Changed reports whether the effective version differs between both sides.
func (it ConfigurationDiff) Changed() bool {
	return it.VersionBefore != it.VersionAfter
}

// DiffRecord compares one dependency across both snapshots.
type DiffRecord struct {
	Name           string               `json:"name"                  yaml:"name"`
	Namespace      string               `json:"namespace"             yaml:"namespace"`
	EntriesBefore  []ConfigurationEntry `json:"gradle_entries_before" yaml:"gradle_entries_before"`
	EntriesAfter   []ConfigurationEntry `json:"gradle_entries_after"  yaml:"gradle_entries_after"`
	Configurations []ConfigurationDiff  `json:"gradle_versions"       yaml:"gradle_versions"`
	Changed        bool                 `json:"changed"               yaml:"changed"`
}

// effectiveVersion is the resolved version of one side in one configuration.
type effectiveVersion struct {
	configuration string
	version       string
}

// Compare produces one record per dependency name found in either snapshot: first the names of
// before in first-sighting order, then the names only present in after.
func Compare(before, after *Snapshot) ([]DiffRecord, error) {
	records := make([]DiffRecord, 0, before.Len()+after.Len())

	for _, name := range before.Names() {
		dependencyBefore, _ := before.Get(name)
		dependencyAfter, foundAfter := after.Get(name)

		var afterPtr *Dependency
		if foundAfter {
			afterPtr = &dependencyAfter
		}

		record, err := compareDependency(&dependencyBefore, afterPtr)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	for _, name := range after.Names() {
		if _, foundBefore := before.Get(name); foundBefore {
			continue
		}

		dependencyAfter, _ := after.Get(name)
		record, err := compareDependency(nil, &dependencyAfter)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// compareDependency builds the record of a dependency; at most one side may be nil.
func compareDependency(before, after *Dependency) (DiffRecord, error) {
	record := DiffRecord{
		EntriesBefore: []ConfigurationEntry{},
		EntriesAfter:  []ConfigurationEntry{},
	}

	var versionsBefore, versionsAfter []effectiveVersion
	var err error

	// the identity of the before side wins when both exist
	if after != nil {
		record.Name, record.Namespace = after.Name, after.Namespace
		record.EntriesAfter = after.Entries
		if versionsAfter, err = effectiveVersions(after); err != nil {
			return DiffRecord{}, err
		}
	}
	if before != nil {
		record.Name, record.Namespace = before.Name, before.Namespace
		record.EntriesBefore = before.Entries
		if versionsBefore, err = effectiveVersions(before); err != nil {
			return DiffRecord{}, err
		}
	}

	record.Configurations = joinConfigurations(versionsBefore, versionsAfter)
	record.Changed = anyChanged(record.Configurations)
	return record, nil
}

// joinConfigurations unions both sides by configuration name, keeping the order of before
// and appending the configurations that only exist after.
func joinConfigurations(before, after []effectiveVersion) []ConfigurationDiff {
	result := make([]ConfigurationDiff, 0, len(before)+len(after))
	done := make(map[string]bool, len(before))

	for _, b := range before {
		versionAfter := versioning.NotApplicable
		for _, a := range after {
			if a.configuration == b.configuration {
				versionAfter = a.version
				break
			}
		}
		done[b.configuration] = true
		result = append(result, newConfigurationDiff(b.configuration, b.version, versionAfter))
	}

	for _, a := range after {
		if done[a.configuration] {
			continue
		}
		result = append(result, newConfigurationDiff(a.configuration, versioning.NotApplicable, a.version))
	}

	return result
}

func newConfigurationDiff(configuration, before, after string) ConfigurationDiff {
	return ConfigurationDiff{
		Configuration: configuration,
		VersionBefore: before,
		VersionAfter:  after,
		Bump:          versioning.Classify(before, after),
	}
}

// effectiveVersions resolves the version in force for every configuration of the dependency.
func effectiveVersions(dependency *Dependency) ([]effectiveVersion, error) {
	result := make([]effectiveVersion, 0, len(dependency.Entries))
	for _, entry := range dependency.Entries {
		version, err := entry.Versions.Effective()
		if err != nil {
			return nil, fmt.Errorf(
				"failed to resolve effective version of %q in %q: %w",
				dependency.Name, entry.Configuration, err,
			)
		}
		result = append(result, effectiveVersion{configuration: entry.Configuration, version: version.String()})
	}
	return result, nil
}

func anyChanged(configurations []ConfigurationDiff) bool {
	for _, configuration := range configurations {
		if configuration.Changed() {
			return true
		}
	}
	return false
}
