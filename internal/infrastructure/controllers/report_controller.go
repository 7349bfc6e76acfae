package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/sonarsize/internal/domain/commands"
	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

// Root command flags, each one enabling a report. They can be combined.
const (
	FlagBranchSize  = "branch-size"
	FlagTotalSize   = "total-size"
	FlagTopXFiles   = "top-x-files"
	FlagProjectSize = "project-size"
)

// ReportController handles the root command, where reports are selected by flags.
type ReportController struct {
	branchSize  commands.BranchSize
	totalSize   commands.TotalSize
	topFiles    commands.TopFiles
	projectSize commands.ProjectSize
}

// NewReportController creates a new ReportController.
func NewReportController(
	branchSize commands.BranchSize,
	totalSize commands.TotalSize,
	topFiles commands.TopFiles,
	projectSize commands.ProjectSize,
) *ReportController {
	return &ReportController{
		branchSize:  branchSize,
		totalSize:   totalSize,
		topFiles:    topFiles,
		projectSize: projectSize,
	}
}

// GetBind returns the Cobra command metadata for the root command.
func (it *ReportController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sonarsize",
		Short: "Measure lines of code in SonarQube across all projects and branches",
		Long: `Queries the SonarQube Web API to find out which projects and branches
contribute most to the number of analyzed lines of code of an instance,
which is what the license limit is based on.

Reports (combinable):
  --branch-size                  Write every branch size to branch_size_report.csv
  --total-size                   Print the total size of the instance
  --top-x-files=<proj>,<br>,<n>  Print the n largest files of a branch
  --project-size                 Print the main branch size of every project

Authentication uses a token with admin privileges, passed with
--sonarqube-admin-token or read from ` + entities.TokenEnvVar + `.`,
		Args: cobra.NoArgs,
	}
}

// Selected reports whether any report flag is set on cmd.
func (it *ReportController) Selected(cmd *cobra.Command) bool {
	flags := cmd.Flags()
	for _, name := range []string{FlagBranchSize, FlagTotalSize, FlagTopXFiles, FlagProjectSize} {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}

// Execute runs every selected report in a fixed order and stops at the first failure.
func (it *ReportController) Execute(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	branchSize, _ := flags.GetBool(FlagBranchSize)
	totalSize, _ := flags.GetBool(FlagTotalSize)
	topXFiles, _ := flags.GetString(FlagTopXFiles)
	projectSize, _ := flags.GetBool(FlagProjectSize)

	var topFilesOpts commands.TopFilesOptions
	if topXFiles != "" {
		var err error
		if topFilesOpts, err = commands.ParseTopFilesOptions(topXFiles); err != nil {
			return err
		}
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	out := cmd.OutOrStdout()

	if branchSize {
		if err = it.branchSize.Execute(ctx, settings, commands.BranchSizeOptions{Output: out}); err != nil {
			return err
		}
	}
	if totalSize {
		if err = it.totalSize.Execute(ctx, settings, commands.TotalSizeOptions{Output: out}); err != nil {
			return err
		}
	}
	if topXFiles != "" {
		topFilesOpts.Output = out
		if err = it.topFiles.Execute(ctx, settings, topFilesOpts); err != nil {
			return err
		}
	}
	if projectSize {
		if err = it.projectSize.Execute(ctx, settings, commands.ProjectSizeOptions{Output: out}); err != nil {
			return err
		}
	}

	return nil
}

// AddFlags adds the report selection flags to the root command.
func (it *ReportController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(FlagBranchSize, false,
		"Save the number of lines of code of all branches to a CSV file")
	cmd.Flags().Bool(FlagTotalSize, false,
		"Print the total size")
	cmd.Flags().String(FlagTopXFiles, "",
		"Print the top x files of a branch, e.g. --top-x-files=my-project,main,10")
	cmd.Flags().Bool(FlagProjectSize, false,
		"Print the main branch size of every project")
}
