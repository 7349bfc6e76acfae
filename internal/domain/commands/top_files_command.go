package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	infraRepos "github.com/rios0rios0/sonarsize/internal/infrastructure/repositories"
)

// DefaultTopFiles is the number of files listed when no count is given.
const DefaultTopFiles = 10

// TopFiles is the interface for the largest files command.
type TopFiles interface {
	Execute(ctx context.Context, settings *entities.Settings, opts TopFilesOptions) error
}

// TopFilesOptions selects the branch to inspect and how many files to list.
type TopFilesOptions struct {
	ProjectKey string
	BranchName string
	TopN       int
	Output     io.Writer // Defaults to os.Stdout
}

// ParseTopFilesOptions parses "<project>,<branch>[,<count>]".
func ParseTopFilesOptions(value string) (TopFilesOptions, error) {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return TopFilesOptions{}, fmt.Errorf(
			"%w: expected <project>,<branch>,<count>, got %q", entities.ErrConfig, value,
		)
	}

	opts := TopFilesOptions{ProjectKey: parts[0], BranchName: parts[1], TopN: DefaultTopFiles}
	if len(parts) == 3 {
		topN, err := strconv.Atoi(parts[2])
		if err != nil {
			return TopFilesOptions{}, fmt.Errorf("%w: file count %q is not an integer", entities.ErrConfig, parts[2])
		}
		opts.TopN = topN
	}
	return opts, nil
}

// TopFilesCommand lists the largest files of one branch.
type TopFilesCommand struct {
	metricsRegistry *infraRepos.MetricsRegistry
}

// NewTopFilesCommand creates a new TopFilesCommand.
func NewTopFilesCommand(metricsRegistry *infraRepos.MetricsRegistry) *TopFilesCommand {
	return &TopFilesCommand{metricsRegistry: metricsRegistry}
}

// Execute prints the largest files report.
func (it *TopFilesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts TopFilesOptions,
) error {
	report, err := it.BuildReport(ctx, settings, opts.ProjectKey, opts.BranchName, opts.TopN)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(outputOf(opts.Output), report)
	return err
}

// BuildReport renders the first topN files of the branch, largest first.
func (it *TopFilesCommand) BuildReport(
	ctx context.Context,
	settings *entities.Settings,
	projectKey, branchName string,
	topN int,
) (string, error) {
	metrics, err := metricsFor(it.metricsRegistry, settings)
	if err != nil {
		return "", err
	}

	files, err := metrics.ListLeafFiles(ctx, projectKey, branchName)
	if err != nil {
		return "", err
	}

	limit := min(max(topN, 0), len(files))
	return renderTopFilesReport(projectKey, branchName, files[:limit]), nil
}
