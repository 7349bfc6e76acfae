package sonarqube

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	"github.com/rios0rios0/sonarsize/internal/domain/repositories"
)

const (
	metricKey = "ncloc"
	pageSize  = 500
)

// SonarQubeMetricsRepository implements repositories.MetricsRepository over the SonarQube Web API.
type SonarQubeMetricsRepository struct {
	client *Client
}

// NewMetricsRepository creates a SonarQube-backed metrics repository.
func NewMetricsRepository(settings *entities.Settings, lookup entities.EnvLookup) repositories.MetricsRepository {
	return &SonarQubeMetricsRepository{client: NewClient(settings, lookup)}
}

// ListProjectKeys walks api/projects/search page by page.
func (r *SonarQubeMetricsRepository) ListProjectKeys(ctx context.Context) ([]string, error) {
	var keys []string

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("p", strconv.Itoa(page))
		query.Set("ps", strconv.Itoa(pageSize))

		var result projectsSearchResponse
		if err := r.client.getJSON(ctx, "api/projects/search", query, &result); err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}

		for _, component := range result.Components {
			keys = append(keys, component.Key)
		}

		if len(result.Components) == 0 || len(keys) >= result.Paging.Total {
			break
		}
	}

	logger.Debugf("Found %d projects on %s", len(keys), r.client.BaseURL())
	return keys, nil
}

// ListBranches returns the branch names of a project in server order.
func (r *SonarQubeMetricsRepository) ListBranches(ctx context.Context, projectKey string) ([]string, error) {
	query := url.Values{}
	query.Set("project", projectKey)

	var result branchesResponse
	if err := r.client.getJSON(ctx, "api/project_branches/list", query, &result); err != nil {
		return nil, fmt.Errorf("failed to list branches of %q: %w", projectKey, err)
	}

	names := make([]string, 0, len(result.Branches))
	for _, branch := range result.Branches {
		names = append(names, branch.Name)
	}
	return names, nil
}

// GetProjectLOC returns the size of the project's main branch.
func (r *SonarQubeMetricsRepository) GetProjectLOC(ctx context.Context, projectKey string) (int, error) {
	query := url.Values{}
	query.Set("component", projectKey)
	query.Set("metricKeys", metricKey)

	return r.componentLOC(ctx, query)
}

// GetBranchLOC returns the size of a single branch.
func (r *SonarQubeMetricsRepository) GetBranchLOC(ctx context.Context, projectKey, branchName string) (int, error) {
	query := url.Values{}
	query.Set("component", projectKey)
	query.Set("branch", branchName)
	query.Set("metricKeys", metricKey)

	return r.componentLOC(ctx, query)
}

func (r *SonarQubeMetricsRepository) componentLOC(ctx context.Context, query url.Values) (int, error) {
	var result componentMeasuresResponse
	if err := r.client.getJSON(ctx, "api/measures/component", query, &result); err != nil {
		return 0, fmt.Errorf("failed to get size of %q: %w", describe(query), err)
	}

	return linesOfCode(result.Component.Measures)
}

// ListLeafFiles walks api/measures/component_tree with the "leaves" strategy,
// asking the server to sort by size. The result is sorted again locally so the
// ordering does not depend on the server honouring the sort.
func (r *SonarQubeMetricsRepository) ListLeafFiles(
	ctx context.Context,
	projectKey, branchName string,
) ([]entities.SizedEntity, error) {
	var files []entities.SizedEntity
	seen := 0

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("component", projectKey)
		query.Set("branch", branchName)
		query.Set("metricKeys", metricKey)
		query.Set("strategy", "leaves")
		query.Set("metricSort", metricKey)
		query.Set("s", "metric")
		query.Set("asc", "false")
		query.Set("p", strconv.Itoa(page))
		query.Set("ps", strconv.Itoa(pageSize))

		var result componentTreeResponse
		if err := r.client.getJSON(ctx, "api/measures/component_tree", query, &result); err != nil {
			return nil, fmt.Errorf("failed to list files of %q: %w", describe(query), err)
		}

		for _, component := range result.Components {
			lines, err := linesOfCode(component.Measures)
			if err != nil {
				return nil, fmt.Errorf("file %q: %w", component.Path, err)
			}
			files = append(files, entities.SizedEntity{Identifier: component.Path, NumberOfLines: lines})
		}

		seen += len(result.Components)
		if len(result.Components) == 0 || seen >= result.Paging.Total {
			break
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].NumberOfLines > files[j].NumberOfLines
	})
	return files, nil
}

// linesOfCode extracts the ncloc measure. No measure at all means 0 lines.
func linesOfCode(measures []measure) (int, error) {
	for _, m := range measures {
		if m.Metric != metricKey && m.Metric != "" {
			continue
		}
		lines, err := strconv.Atoi(m.Value)
		if err != nil {
			return 0, fmt.Errorf("%w: %s value %q is not an integer", entities.ErrMalformedResponse, metricKey, m.Value)
		}
		return lines, nil
	}
	return 0, nil
}

func describe(query url.Values) string {
	if branch := query.Get("branch"); branch != "" {
		return query.Get("component") + "@" + branch
	}
	return query.Get("component")
}
