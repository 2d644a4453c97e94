package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gradlediff/internal/domain/commands"
	"github.com/rios0rios0/gradlediff/internal/domain/entities"
)

// ParseController handles the "parse" subcommand.
type ParseController struct {
	command commands.Parse
}

// NewParseController creates a new ParseController.
func NewParseController(command commands.Parse) *ParseController {
	return &ParseController{command: command}
}

// GetBind returns the Cobra command metadata for the parse controller.
func (it *ParseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "parse <report>",
		Short: "Print the dependencies read from one report",
		Long: `Parse a single "gradle dependencies" report and print every dependency
with its transitive and pinned versions per configuration.`,
	}
}

// Execute parses the report named by the first argument.
func (it *ParseController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 {
		logger.Errorf("invalid arguments: %v", ErrMissingReport)
		return ErrMissingReport
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return err
	}
	// the HTML report has no snapshot layout, so parse defaults to JSON on stdout
	settings.Format = "json"
	settings.Output = "-"
	applyOutputFlags(cmd, settings)
	if validateErr := settings.Validate(); validateErr != nil {
		logger.Errorf("failed to load config: %v", validateErr)
		return validateErr
	}

	gitRef, _ := cmd.Flags().GetString("git-ref")
	opts := commands.ParseOptions{
		Source: entities.ReportSource{Path: args[0], Revision: gitRef},
		Stdout: cmd.OutOrStdout(),
	}

	if runErr := it.command.Execute(ctx, settings, opts); runErr != nil {
		logger.Errorf("Parse failed: %v", runErr)
		return runErr
	}
	return nil
}

// AddFlags adds the parse-specific flags to the given Cobra command.
func (it *ParseController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "json", "Output format (json, yaml, table)")
	cmd.Flags().StringP("output", "o", "-", `Output file, "-" for stdout`)
	cmd.Flags().Bool("json", false, "Shorthand for --format json")
	cmd.Flags().String("git-ref", "", "Read the report from this Git revision")
}
