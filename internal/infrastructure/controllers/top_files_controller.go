package controllers

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/sonarsize/internal/domain/commands"
	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

// TopFilesController handles the "top-files" subcommand.
type TopFilesController struct {
	command commands.TopFiles
}

// NewTopFilesController creates a new TopFilesController.
func NewTopFilesController(command commands.TopFiles) *TopFilesController {
	return &TopFilesController{command: command}
}

// GetBind returns the Cobra command metadata for the top files controller.
func (it *TopFilesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "top-files <project> <branch> [count]",
		Short: "Print the largest files of a branch",
		Long: `Print the largest files of a branch of a project as CSV, largest first.
The count defaults to 10.`,
		Args: cobra.RangeArgs(2, 3), //nolint:mnd // project, branch, optional count
	}
}

// Execute prints the largest files of the given branch.
func (it *TopFilesController) Execute(cmd *cobra.Command, args []string) error {
	opts, err := commands.ParseTopFilesOptions(strings.Join(args, ","))
	if err != nil {
		return err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts.Output = cmd.OutOrStdout()
	return it.command.Execute(context.Background(), settings, opts)
}

// AddFlags is a no-op: top-files takes positional arguments.
func (it *TopFilesController) AddFlags(_ *cobra.Command) {}
