package commands

import (
	"context"
	"fmt"
	"io"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	"github.com/rios0rios0/sonarsize/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/sonarsize/internal/infrastructure/repositories"
)

// BranchSize is the interface for the branch size report command.
type BranchSize interface {
	Execute(ctx context.Context, settings *entities.Settings, opts BranchSizeOptions) error
}

// BranchSizeOptions holds runtime options for the branch size report.
type BranchSizeOptions struct {
	Console bool      // Print the report instead of writing settings.ReportFile
	Output  io.Writer // Defaults to os.Stdout
}

// BranchSizeCommand lists the size of every branch of every project, largest first.
type BranchSizeCommand struct {
	metricsRegistry *infraRepos.MetricsRegistry
	reports         repositories.ReportRepository
}

// NewBranchSizeCommand creates a new BranchSizeCommand.
func NewBranchSizeCommand(
	metricsRegistry *infraRepos.MetricsRegistry,
	reports repositories.ReportRepository,
) *BranchSizeCommand {
	return &BranchSizeCommand{
		metricsRegistry: metricsRegistry,
		reports:         reports,
	}
}

// Execute builds the report and either saves it or prints it.
func (it *BranchSizeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts BranchSizeOptions,
) error {
	report, err := it.BuildReport(ctx, settings)
	if err != nil {
		return err
	}

	out := outputOf(opts.Output)
	if opts.Console {
		_, err = fmt.Fprint(out, report)
		return err
	}

	path, err := it.reports.Save(settings.ReportFile, report)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Report written to file %s\n", path)
	return err
}

// BuildReport renders one CSV row per (project, branch), sorted by size descending.
// Branches of equal size stay in project order, then branch order.
func (it *BranchSizeCommand) BuildReport(ctx context.Context, settings *entities.Settings) (string, error) {
	metrics, err := metricsFor(it.metricsRegistry, settings)
	if err != nil {
		return "", err
	}

	perProject, err := collectBranchSizes(ctx, metrics, settings.Concurrency)
	if err != nil {
		return "", err
	}

	var branches []entities.BranchEntity
	for _, project := range perProject {
		branches = append(branches, project.Branches...)
	}

	sort.SliceStable(branches, func(i, j int) bool {
		return branches[i].NumberOfLines > branches[j].NumberOfLines
	})

	logger.Infof("Branch size report covers %d branches", len(branches))
	return renderBranchReport(branches), nil
}
