//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/sonarsize/internal/domain/repositories"
)

// StubReportRepository implements repositories.ReportRepository, remembering what was saved.
type StubReportRepository struct {
	SaveErr      error
	SavedName    string
	SavedContent string
	SaveCount    int
}

var _ repositories.ReportRepository = (*StubReportRepository)(nil)

func (s *StubReportRepository) Save(name, content string) (string, error) {
	s.SaveCount++
	if s.SaveErr != nil {
		return "", s.SaveErr
	}
	s.SavedName = name
	s.SavedContent = content
	return name, nil
}
