package controllers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlediff/internal/domain/commands"
	"github.com/rios0rios0/gradlediff/internal/domain/entities"
)

// ErrMissingReport is returned when the reports to compare are not given.
var ErrMissingReport = errors.New("missing report path")

// DiffController handles the "diff" subcommand.
type DiffController struct {
	command commands.Diff
}

// NewDiffController creates a new DiffController.
func NewDiffController(command commands.Diff) *DiffController {
	return &DiffController{command: command}
}

// GetBind returns the Cobra command metadata for the diff controller.
func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "diff",
		Short: "Compare two Gradle dependency reports",
		Long: `Compare the output of "gradle dependencies" taken before and after a change,
and report which dependency versions moved in each configuration.

The before report can also be read from a Git revision:
  gradlediff diff -a build/deps.txt --git-ref main`,
	}
}

// Execute compares the reports named by the flags.
func (it *DiffController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := it.settings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return err
	}

	opts, err := diffOptions(cmd)
	if err != nil {
		logger.Errorf("invalid arguments: %v", err)
		return err
	}
	opts.Stdout = cmd.OutOrStdout()

	logger.Infof("Comparing %q with %q", opts.Before, opts.After)
	if runErr := it.command.Execute(ctx, settings, opts); runErr != nil {
		logger.Errorf("Diff failed: %v", runErr)
		return runErr
	}
	return nil
}

// AddFlags adds the diff-specific flags to the given Cobra command.
func (it *DiffController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("before", "b", "", "Path to the report taken before the change")
	cmd.Flags().StringP("after", "a", "", "Path to the report taken after the change")
	cmd.Flags().String("git-ref", "", "Read the before report from this Git revision")
	cmd.Flags().StringP("format", "f", entities.DefaultFormat, "Output format (html, json, yaml, table)")
	cmd.Flags().StringP("output", "o", "", `Output file, "-" for stdout`)
	cmd.Flags().Bool("json", false, "Shorthand for --format json")
	cmd.Flags().Bool("changed-only", false, "Only report dependencies whose versions changed")
	cmd.Flags().StringSlice("bump", nil, "Only report these changes (major, minor, patch, other, added, removed)")
	cmd.Flags().StringSlice("include-config", nil, "Only report configurations matching these globs")
	cmd.Flags().StringSlice("exclude-config", nil, "Skip configurations matching these globs")
}

func (it *DiffController) settings(cmd *cobra.Command) (*entities.Settings, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	applyOutputFlags(cmd, settings)

	flags := cmd.Flags()
	if flags.Changed("changed-only") {
		settings.ChangedOnly, _ = flags.GetBool("changed-only")
	}
	if flags.Changed("bump") {
		bumps, _ := flags.GetStringSlice("bump")
		settings.Bumps = splitList(bumps)
	}
	if flags.Changed("include-config") {
		includes, _ := flags.GetStringSlice("include-config")
		settings.IncludeConfigurations = splitList(includes)
	}
	if flags.Changed("exclude-config") {
		excludes, _ := flags.GetStringSlice("exclude-config")
		settings.ExcludeConfigurations = splitList(excludes)
	}

	return settings, settings.Validate()
}

// diffOptions resolves the two report sources. With --git-ref and no --before, the
// before report is the after path at that revision.
func diffOptions(cmd *cobra.Command) (commands.DiffOptions, error) {
	before, _ := cmd.Flags().GetString("before")
	after, _ := cmd.Flags().GetString("after")
	gitRef, _ := cmd.Flags().GetString("git-ref")

	if after == "" {
		return commands.DiffOptions{}, fmt.Errorf("%w: --after is required", ErrMissingReport)
	}
	if before == "" {
		if gitRef == "" {
			return commands.DiffOptions{}, fmt.Errorf("%w: --before or --git-ref is required", ErrMissingReport)
		}
		// the after report is relative to the working directory, unlike a revision path
		absAfter, err := filepath.Abs(after)
		if err != nil {
			return commands.DiffOptions{}, fmt.Errorf("invalid after report path: %w", err)
		}
		before = absAfter
	}

	return commands.DiffOptions{
		Before: entities.ReportSource{Path: before, Revision: gitRef},
		After:  entities.ReportSource{Path: after},
	}, nil
}
