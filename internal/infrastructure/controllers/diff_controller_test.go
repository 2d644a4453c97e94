//go:build unit

package controllers_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/infrastructure/controllers"
	"github.com/rios0rios0/gradlediff/internal/versioning"
	"github.com/rios0rios0/gradlediff/test/domain/commanddoubles"
)

// newCommand builds a Cobra command carrying the controller flags plus the global --config flag,
// pointed at a settings file holding content.
func newCommand(t *testing.T, controller entities.Controller, settings string, args ...string) *cobra.Command {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "gradlediff.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(settings), 0o600))

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().String("config", "", "")
	controller.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(append([]string{"--config", configPath}, args...)))
	return cmd
}

func TestDiffControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass both reports and the settings file to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(stub)
		cmd := newCommand(t, controller, "format: table\nchanged_only: true\n", "-b", "old.txt", "-a", "new.txt")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, entities.ReportSource{Path: "old.txt"}, stub.LastOpts.Before)
		assert.Equal(t, entities.ReportSource{Path: "new.txt"}, stub.LastOpts.After)
		assert.Equal(t, "table", stub.LastSettings.Format)
		assert.True(t, stub.LastSettings.ChangedOnly)
	})

	t.Run("should let flags override the settings file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(stub)
		cmd := newCommand(t, controller, "format: table\nbumps: [patch]\n",
			"-b", "old.txt", "-a", "new.txt", "--json", "--bump", "major,minor", "--exclude-config", "test*")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "json", stub.LastSettings.Format)
		assert.Equal(t, []string{"major", "minor"}, stub.LastSettings.Bumps)
		assert.Equal(t, []string{"test*"}, stub.LastSettings.ExcludeConfigurations)

		filter, filterErr := stub.LastSettings.Filter()
		require.NoError(t, filterErr)
		assert.Equal(t, []versioning.Bump{versioning.BumpMajor, versioning.BumpMinor}, filter.Bumps)
	})

	t.Run("should read the before report from a revision of the after report", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(stub)
		cmd := newCommand(t, controller, "format: json\n", "-a", "build/deps.txt", "--git-ref", "main")

		absAfter, absErr := filepath.Abs("build/deps.txt")
		require.NoError(t, absErr)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ReportSource{Path: absAfter, Revision: "main"}, stub.LastOpts.Before)
		assert.Equal(t, entities.ReportSource{Path: "build/deps.txt"}, stub.LastOpts.After)
	})

	t.Run("should keep an explicit before path relative to the repository root", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(stub)
		cmd := newCommand(t, controller, "format: json\n",
			"-b", "build/deps.txt", "-a", "after.txt", "--git-ref", "main")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ReportSource{Path: "build/deps.txt", Revision: "main"}, stub.LastOpts.Before)
	})

	t.Run("should fail without the after report", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(stub)
		cmd := newCommand(t, controller, "format: json\n", "-b", "old.txt")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, controllers.ErrMissingReport)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should fail with an invalid bump flag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDiffCommand{}
		controller := controllers.NewDiffController(stub)
		cmd := newCommand(t, controller, "format: json\n", "-b", "old.txt", "-a", "new.txt", "--bump", "huge")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		commandErr := errors.New("boom")
		stub := &commanddoubles.StubDiffCommand{ExecuteErr: commandErr}
		controller := controllers.NewDiffController(stub)
		cmd := newCommand(t, controller, "format: json\n", "-b", "old.txt", "-a", "new.txt")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, commandErr)
	})
}
