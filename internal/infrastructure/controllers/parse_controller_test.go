//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/infrastructure/controllers"
	"github.com/rios0rios0/gradlediff/test/domain/commanddoubles"
)

func TestParseControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should print the report as JSON by default", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubParseCommand{}
		controller := controllers.NewParseController(stub)
		cmd := newCommand(t, controller, "format: html\n")

		// when
		err := controller.Execute(cmd, []string{"deps.txt"})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ReportSource{Path: "deps.txt"}, stub.LastOpts.Source)
		assert.Equal(t, "json", stub.LastSettings.Format)
		assert.Empty(t, stub.LastSettings.ReportPath())
	})

	t.Run("should honour the format flag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubParseCommand{}
		controller := controllers.NewParseController(stub)
		cmd := newCommand(t, controller, "", "--format", "yaml", "--git-ref", "HEAD~1")

		// when
		err := controller.Execute(cmd, []string{"deps.txt"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "yaml", stub.LastSettings.Format)
		assert.Equal(t, entities.ReportSource{Path: "deps.txt", Revision: "HEAD~1"}, stub.LastOpts.Source)
	})

	t.Run("should fail without a report", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubParseCommand{}
		controller := controllers.NewParseController(stub)
		cmd := newCommand(t, controller, "")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, controllers.ErrMissingReport)
	})
}
