package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	"github.com/rios0rios0/sonarsize/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/sonarsize/internal/infrastructure/repositories"
)

// forEachProject runs fetch once per project key with at most concurrency calls in
// flight. Results land in the slot of their key, so the returned slice is in
// project discovery order no matter how the calls interleave.
func forEachProject[T any](
	ctx context.Context,
	keys []string,
	concurrency int,
	fetch func(ctx context.Context, projectKey string) (T, error),
) ([]T, error) {
	results := make([]T, len(keys))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(concurrency, 1))
	for i, key := range keys {
		group.Go(func() error {
			result, err := fetch(groupCtx, key)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// projectBranches holds the branch sizes of one project in branch order.
type projectBranches struct {
	ProjectKey string
	Branches   []entities.BranchEntity
}

// collectBranchSizes fetches the size of every branch of every project,
// in project order.
func collectBranchSizes(
	ctx context.Context,
	metrics repositories.MetricsRepository,
	concurrency int,
) ([]projectBranches, error) {
	keys, err := metrics.ListProjectKeys(ctx)
	if err != nil {
		return nil, err
	}

	logger.Infof("Collecting branch sizes of %d projects...", len(keys))

	fetch := func(ctx context.Context, projectKey string) (projectBranches, error) {
		result := projectBranches{ProjectKey: projectKey}

		branches, listErr := metrics.ListBranches(ctx, projectKey)
		if listErr != nil {
			return result, listErr
		}

		result.Branches = make([]entities.BranchEntity, 0, len(branches))
		for _, branch := range branches {
			lines, sizeErr := metrics.GetBranchLOC(ctx, projectKey, branch)
			if sizeErr != nil {
				return result, sizeErr
			}
			logger.Debugf("%s@%s: %d lines", projectKey, branch, lines)
			result.Branches = append(result.Branches, entities.NewBranchEntity(projectKey, branch, lines))
		}
		return result, nil
	}

	return forEachProject(ctx, keys, concurrency, fetch)
}

// metricsFor builds the metrics repository selected by settings.
func metricsFor(
	registry *infraRepos.MetricsRegistry,
	settings *entities.Settings,
) (repositories.MetricsRepository, error) {
	metrics, err := registry.Get(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics provider: %w", err)
	}
	return metrics, nil
}
