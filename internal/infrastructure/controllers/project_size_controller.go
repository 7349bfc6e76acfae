package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/sonarsize/internal/domain/commands"
	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

// ProjectSizeController handles the "project-size" subcommand.
type ProjectSizeController struct {
	command commands.ProjectSize
}

// NewProjectSizeController creates a new ProjectSizeController.
func NewProjectSizeController(command commands.ProjectSize) *ProjectSizeController {
	return &ProjectSizeController{command: command}
}

// GetBind returns the Cobra command metadata for the project size controller.
func (it *ProjectSizeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "project-size",
		Short: "Print the number of lines of code of each project's main branch",
		Args:  cobra.NoArgs,
	}
}

// Execute prints the project size report.
func (it *ProjectSizeController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(context.Background(), settings, commands.ProjectSizeOptions{
		Output: cmd.OutOrStdout(),
	})
}

// AddFlags is a no-op: project-size only uses the global flags.
func (it *ProjectSizeController) AddFlags(_ *cobra.Command) {}
