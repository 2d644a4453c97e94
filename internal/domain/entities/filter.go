package entities

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rios0rios0/gradlediff/internal/versioning"
)

// DiffFilter narrows a list of diff records down to what the user asked to see.
type DiffFilter struct {
	ChangedOnly           bool
	Bumps                 []versioning.Bump
	IncludeConfigurations []string // glob patterns, empty means all
	ExcludeConfigurations []string // glob patterns
}

// Validate checks that every configuration pattern is a valid glob.
func (it DiffFilter) Validate() error {
	for _, pattern := range slices.Concat(it.IncludeConfigurations, it.ExcludeConfigurations) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid configuration pattern %q", pattern)
		}
	}
	return nil
}

// Apply returns the records that pass the filter. Records are copied, the input is left untouched.
func (it DiffFilter) Apply(records []DiffRecord) []DiffRecord {
	var filtered []DiffRecord

	for _, record := range records {
		configurations := make([]ConfigurationDiff, 0, len(record.Configurations))
		for _, configuration := range record.Configurations {
			if it.keepsConfiguration(configuration.Configuration) {
				configurations = append(configurations, configuration)
			}
		}

		// every configuration of this dependency was filtered out
		if len(configurations) == 0 && len(record.Configurations) > 0 {
			continue
		}

		record.Configurations = configurations
		record.Changed = anyChanged(configurations)

		if it.ChangedOnly && !record.Changed {
			continue
		}
		if len(it.Bumps) > 0 && !it.matchesBump(configurations) {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}

func (it DiffFilter) keepsConfiguration(name string) bool {
	if len(it.IncludeConfigurations) > 0 && !matchesAny(it.IncludeConfigurations, name) {
		return false
	}
	return !matchesAny(it.ExcludeConfigurations, name)
}

func (it DiffFilter) matchesBump(configurations []ConfigurationDiff) bool {
	for _, configuration := range configurations {
		if slices.Contains(it.Bumps, configuration.Bump) {
			return true
		}
	}
	return false
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// SortRecords orders records by namespace, then name.
func SortRecords(records []DiffRecord) {
	slices.SortStableFunc(records, func(a, b DiffRecord) int {
		if cmp := strings.Compare(a.Namespace, b.Namespace); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.Name, b.Name)
	})
}
