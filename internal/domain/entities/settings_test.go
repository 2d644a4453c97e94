//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/versioning"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".gradlediff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should load every field", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, `
format: table
output: diff.txt
changed_only: true
sort: false
bumps: [major, minor]
include_configurations: ["*Classpath"]
exclude_configurations: ["test*"]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "table", settings.Format)
		assert.Equal(t, "diff.txt", settings.ReportPath())
		assert.True(t, settings.ChangedOnly)
		assert.False(t, settings.ShouldSort())

		filter, filterErr := settings.Filter()
		require.NoError(t, filterErr)
		assert.Equal(t, []versioning.Bump{versioning.BumpMajor, versioning.BumpMinor}, filter.Bumps)
		assert.Equal(t, []string{"*Classpath"}, filter.IncludeConfigurations)
		assert.Equal(t, []string{"test*"}, filter.ExcludeConfigurations)
	})

	t.Run("should default to the HTML report", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "changed_only: false\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultFormat, settings.Format)
		assert.Equal(t, entities.DefaultReportPath, settings.ReportPath())
		assert.True(t, settings.ShouldSort())
	})

	t.Run("should reject an unknown format", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "format: xml\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})

	t.Run("should reject an unknown bump", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettings(t, "bumps: [huge]\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})
}

func TestNewSettingsExpandsEnvironment(t *testing.T) { //nolint:paralleltest // t.Setenv
	// given
	t.Setenv("GRADLEDIFF_TEST_OUT", "/tmp/out")
	path := writeSettings(t, "format: json\noutput: ${GRADLEDIFF_TEST_OUT}/diff.json\n")

	// when
	settings, err := entities.NewSettings(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out/diff.json", settings.ReportPath())
}

func TestSettingsReportPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings entities.Settings
		expected string
	}{
		{name: "should write HTML to the default file", settings: entities.Settings{Format: "html"}, expected: entities.DefaultReportPath},
		{name: "should print other formats", settings: entities.Settings{Format: "json"}, expected: ""},
		{name: "should honour an explicit file", settings: entities.Settings{Format: "json", Output: "out.json"}, expected: "out.json"},
		{name: "should print when asked with a dash", settings: entities.Settings{Format: "html", Output: "-"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			settings := tt.settings

			// when
			result := settings.ReportPath()

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}
