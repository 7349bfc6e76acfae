package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/sonarsize/internal/domain/commands"
	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

// BranchSizeController handles the "branch-size" subcommand.
type BranchSizeController struct {
	command commands.BranchSize
}

// NewBranchSizeController creates a new BranchSizeController.
func NewBranchSizeController(command commands.BranchSize) *BranchSizeController {
	return &BranchSizeController{command: command}
}

// GetBind returns the Cobra command metadata for the branch size controller.
func (it *BranchSizeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "branch-size",
		Short: "Write the number of lines of code of every branch to a CSV file",
		Long: `Query every project and every branch and write the number of lines of code
per branch to a CSV file (branch_size_report.csv by default), largest first.

Large non-default branches count towards the license but are not shown on
the project overview; this report makes them visible.`,
		Args: cobra.NoArgs,
	}
}

// Execute runs the branch size report.
func (it *BranchSizeController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	console, _ := cmd.Flags().GetBool("console")
	return it.command.Execute(context.Background(), settings, commands.BranchSizeOptions{
		Console: console,
		Output:  cmd.OutOrStdout(),
	})
}

// AddFlags adds the branch-size specific flags to the given Cobra command.
func (it *BranchSizeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("console", false, "Print the report instead of writing it to a file")
}
