package repositories

import (
	"context"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

// MetricsRepository abstracts a code-quality server that reports lines of code
// per project, branch, and file.
type MetricsRepository interface {
	// ListProjectKeys returns the keys of every project visible to the credential.
	ListProjectKeys(ctx context.Context) ([]string, error)

	// ListBranches returns the branch names of a project.
	ListBranches(ctx context.Context, projectKey string) ([]string, error)

	// GetProjectLOC returns the lines of code of the project's default branch.
	// An absent metric is 0, not an error.
	GetProjectLOC(ctx context.Context, projectKey string) (int, error)

	// GetBranchLOC returns the lines of code of a branch. An absent metric is 0, not an error.
	GetBranchLOC(ctx context.Context, projectKey, branchName string) (int, error)

	// ListLeafFiles returns the files of a branch, largest first.
	// Files with equal size keep the order the server returned them in.
	ListLeafFiles(ctx context.Context, projectKey, branchName string) ([]entities.SizedEntity, error)
}
