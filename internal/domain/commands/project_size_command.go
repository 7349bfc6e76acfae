package commands

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	infraRepos "github.com/rios0rios0/sonarsize/internal/infrastructure/repositories"
)

// ProjectSize is the interface for the project size report command.
type ProjectSize interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ProjectSizeOptions) error
}

// ProjectSizeOptions holds runtime options for the project size report.
type ProjectSizeOptions struct {
	Output io.Writer // Defaults to os.Stdout
}

// ProjectSizeCommand lists the size of each project's main branch, which is
// the only number the server's project overview shows.
type ProjectSizeCommand struct {
	metricsRegistry *infraRepos.MetricsRegistry
}

// NewProjectSizeCommand creates a new ProjectSizeCommand.
func NewProjectSizeCommand(metricsRegistry *infraRepos.MetricsRegistry) *ProjectSizeCommand {
	return &ProjectSizeCommand{metricsRegistry: metricsRegistry}
}

// Execute prints the project size report.
func (it *ProjectSizeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ProjectSizeOptions,
) error {
	report, err := it.BuildReport(ctx, settings)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(outputOf(opts.Output), report)
	return err
}

// BuildReport renders one row per project, sorted by size descending.
func (it *ProjectSizeCommand) BuildReport(ctx context.Context, settings *entities.Settings) (string, error) {
	metrics, err := metricsFor(it.metricsRegistry, settings)
	if err != nil {
		return "", err
	}

	keys, err := metrics.ListProjectKeys(ctx)
	if err != nil {
		return "", err
	}

	projects, err := forEachProject(ctx, keys, settings.Concurrency,
		func(ctx context.Context, projectKey string) (entities.SizedEntity, error) {
			lines, sizeErr := metrics.GetProjectLOC(ctx, projectKey)
			if sizeErr != nil {
				return entities.SizedEntity{}, sizeErr
			}
			return entities.SizedEntity{Identifier: projectKey, NumberOfLines: lines}, nil
		},
	)
	if err != nil {
		return "", err
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].NumberOfLines > projects[j].NumberOfLines
	})
	return renderProjectReport(projects), nil
}
