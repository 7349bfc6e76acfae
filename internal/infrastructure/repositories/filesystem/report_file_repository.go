package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/sonarsize/internal/domain/repositories"
)

const reportFileMode = 0o644

// ReportFileRepository writes reports as plain files below a base directory.
type ReportFileRepository struct {
	baseDir string
}

// NewReportRepository creates a repository rooted at baseDir ("." for the working directory).
func NewReportRepository(baseDir string) repositories.ReportRepository {
	return &ReportFileRepository{baseDir: baseDir}
}

// Save overwrites the file at name. Absolute names are used as given.
// The write is not atomic: a crash mid-write leaves a partial file behind.
func (r *ReportFileRepository) Save(name, content string) (string, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.baseDir, name)
	}

	if err := os.WriteFile(path, []byte(content), reportFileMode); err != nil {
		return "", fmt.Errorf("failed to write report %q: %w", path, err)
	}

	logger.Debugf("Wrote %d bytes to %s", len(content), path)
	return path, nil
}
