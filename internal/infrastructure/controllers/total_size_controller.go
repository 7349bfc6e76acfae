package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/sonarsize/internal/domain/commands"
	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

// TotalSizeController handles the "total-size" subcommand.
type TotalSizeController struct {
	command commands.TotalSize
}

// NewTotalSizeController creates a new TotalSizeController.
func NewTotalSizeController(command commands.TotalSize) *TotalSizeController {
	return &TotalSizeController{command: command}
}

// GetBind returns the Cobra command metadata for the total size controller.
func (it *TotalSizeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "total-size",
		Short: "Print the total number of lines of code of the instance",
		Long: `Print the total number of analyzed lines of code. Every project counts with
its largest branch, which matches the figure on the license page.`,
		Args: cobra.NoArgs,
	}
}

// Execute prints the total size.
func (it *TotalSizeController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(context.Background(), settings, commands.TotalSizeOptions{
		Output: cmd.OutOrStdout(),
	})
}

// AddFlags is a no-op: total-size only uses the global flags.
func (it *TotalSizeController) AddFlags(_ *cobra.Command) {}
