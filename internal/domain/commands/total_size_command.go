package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	infraRepos "github.com/rios0rios0/sonarsize/internal/infrastructure/repositories"
)

// TotalSize is the interface for the total size command.
type TotalSize interface {
	Execute(ctx context.Context, settings *entities.Settings, opts TotalSizeOptions) error
}

// TotalSizeOptions holds runtime options for the total size command.
type TotalSizeOptions struct {
	Output io.Writer // Defaults to os.Stdout
}

// TotalSizeCommand computes the instance-wide number of lines the way the
// server's license counts them: each project counts with its largest branch.
type TotalSizeCommand struct {
	metricsRegistry *infraRepos.MetricsRegistry
}

// NewTotalSizeCommand creates a new TotalSizeCommand.
func NewTotalSizeCommand(metricsRegistry *infraRepos.MetricsRegistry) *TotalSizeCommand {
	return &TotalSizeCommand{metricsRegistry: metricsRegistry}
}

// Execute prints the total number of lines.
func (it *TotalSizeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts TotalSizeOptions,
) error {
	total, err := it.ComputeTotal(ctx, settings)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(outputOf(opts.Output), "Total number of lines: %d\n", total)
	return err
}

// ComputeTotal sums the largest branch of every project.
// A project without branches contributes 0.
func (it *TotalSizeCommand) ComputeTotal(ctx context.Context, settings *entities.Settings) (int, error) {
	metrics, err := metricsFor(it.metricsRegistry, settings)
	if err != nil {
		return 0, err
	}

	perProject, err := collectBranchSizes(ctx, metrics, settings.Concurrency)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, project := range perProject {
		largest, ok := largestBranch(project.Branches)
		if !ok {
			logger.Warnf("Project %q has no branches, counting it as 0 lines", project.ProjectKey)
			continue
		}
		total += largest.NumberOfLines
	}
	return total, nil
}

func largestBranch(branches []entities.BranchEntity) (entities.BranchEntity, bool) {
	if len(branches) == 0 {
		return entities.BranchEntity{}, false
	}

	largest := branches[0]
	for _, branch := range branches[1:] {
		if branch.NumberOfLines > largest.NumberOfLines {
			largest = branch
		}
	}
	return largest, true
}
