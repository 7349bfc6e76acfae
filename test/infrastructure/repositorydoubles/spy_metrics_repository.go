//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	"github.com/rios0rios0/sonarsize/internal/domain/repositories"
)

// SpyMetricsRepository implements repositories.MetricsRepository as a configurable spy.
// It is safe for concurrent use.
type SpyMetricsRepository struct {
	mu sync.Mutex

	// --- ListProjectKeys ---
	ProjectKeys     []string
	ListProjectsErr error

	// --- ListBranches ---
	Branches        map[string][]string // project -> branch names
	ListBranchesErr error

	// --- GetBranchLOC ---
	// project -> branch -> lines; missing means 0
	BranchLOC    map[string]map[string]int
	BranchLOCErr error
	// spy: "project@branch" of every call
	BranchLOCCalls []string

	// --- GetProjectLOC ---
	ProjectLOC    map[string]int
	ProjectLOCErr error

	// --- ListLeafFiles ---
	LeafFiles        map[string][]entities.SizedEntity // "project@branch" -> files
	ListLeafFilesErr error
}

var _ repositories.MetricsRepository = (*SpyMetricsRepository)(nil)

func (s *SpyMetricsRepository) ListProjectKeys(_ context.Context) ([]string, error) {
	return s.ProjectKeys, s.ListProjectsErr
}

func (s *SpyMetricsRepository) ListBranches(_ context.Context, projectKey string) ([]string, error) {
	if s.ListBranchesErr != nil {
		return nil, s.ListBranchesErr
	}
	return s.Branches[projectKey], nil
}

func (s *SpyMetricsRepository) GetProjectLOC(_ context.Context, projectKey string) (int, error) {
	if s.ProjectLOCErr != nil {
		return 0, s.ProjectLOCErr
	}
	return s.ProjectLOC[projectKey], nil
}

func (s *SpyMetricsRepository) GetBranchLOC(_ context.Context, projectKey, branchName string) (int, error) {
	s.mu.Lock()
	s.BranchLOCCalls = append(s.BranchLOCCalls, fmt.Sprintf("%s@%s", projectKey, branchName))
	s.mu.Unlock()

	if s.BranchLOCErr != nil {
		return 0, s.BranchLOCErr
	}
	return s.BranchLOC[projectKey][branchName], nil
}

func (s *SpyMetricsRepository) ListLeafFiles(
	_ context.Context, projectKey, branchName string,
) ([]entities.SizedEntity, error) {
	if s.ListLeafFilesErr != nil {
		return nil, s.ListLeafFilesErr
	}
	return s.LeafFiles[projectKey+"@"+branchName], nil
}

// BranchLOCCallCount returns how many times GetBranchLOC was called.
func (s *SpyMetricsRepository) BranchLOCCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.BranchLOCCalls)
}
