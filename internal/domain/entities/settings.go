package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/gradlediff/internal/versioning"
)

const (
	// DefaultFormat is the output format used when neither the settings file nor the flags choose one.
	DefaultFormat = "html"
	// DefaultReportPath is where the HTML report is written unless told otherwise.
	DefaultReportPath = "gradle-dependencies-diff-report.html"
)

// Settings is the top-level configuration for gradlediff.
type Settings struct {
	Format                string   `yaml:"format"`                 // "html", "json", "yaml", "table"
	Output                string   `yaml:"output"`                 // File path, "-" or empty for the format default
	ChangedOnly           bool     `yaml:"changed_only"`           // Drop dependencies whose versions did not move
	Sort                  *bool    `yaml:"sort"`                   // Order records by namespace and name (default true)
	Bumps                 []string `yaml:"bumps"`                  // Keep only these kinds of change
	IncludeConfigurations []string `yaml:"include_configurations"` // Glob patterns
	ExcludeConfigurations []string `yaml:"exclude_configurations"` // Glob patterns
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no configuration file exists.
func NewDefaultSettings() *Settings {
	return &Settings{Format: DefaultFormat}
}

// NewSettings reads and parses a configuration file, expanding environment variables.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if settings.Format == "" {
		settings.Format = DefaultFormat
	}
	settings.Output = expandEnv(settings.Output)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gradlediff.yaml",
		".gradlediff.yml",
		"gradlediff.yaml",
		"gradlediff.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ShouldSort reports whether records must be ordered; unset means yes.
func (it *Settings) ShouldSort() bool {
	return it.Sort == nil || *it.Sort
}

// ReportPath resolves where the rendered output goes; empty means stdout.
func (it *Settings) ReportPath() string {
	switch {
	case it.Output == "-":
		return ""
	case it.Output != "":
		return it.Output
	case it.Format == DefaultFormat:
		return DefaultReportPath
	default:
		return ""
	}
}

// Filter converts the settings into a DiffFilter.
func (it *Settings) Filter() (DiffFilter, error) {
	bumps := make([]versioning.Bump, 0, len(it.Bumps))
	for _, name := range it.Bumps {
		bump, err := versioning.ParseBump(name)
		if err != nil {
			return DiffFilter{}, err
		}
		bumps = append(bumps, bump)
	}

	filter := DiffFilter{
		ChangedOnly:           it.ChangedOnly,
		Bumps:                 bumps,
		IncludeConfigurations: it.IncludeConfigurations,
		ExcludeConfigurations: it.ExcludeConfigurations,
	}
	return filter, filter.Validate()
}

// Validate checks for invalid configuration values.
func (it *Settings) Validate() error {
	switch it.Format {
	case "html", "json", "yaml", "table":
	default:
		return fmt.Errorf("format %q is not supported (html, json, yaml, table)", it.Format)
	}

	if _, err := it.Filter(); err != nil {
		return fmt.Errorf("invalid filter settings: %w", err)
	}
	return nil
}

// expandEnv expands environment variable references (${VAR}).
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
