package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	domainRepos "github.com/rios0rios0/sonarsize/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/sonarsize/internal/infrastructure/repositories/filesystem"
	sqRepo "github.com/rios0rios0/sonarsize/internal/infrastructure/repositories/sonarqube"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register metrics registry with all backend factories
	if err := container.Provide(func(lookup entities.EnvLookup) *MetricsRegistry {
		reg := NewMetricsRegistry()
		reg.Register(entities.DefaultProvider, func(settings *entities.Settings) domainRepos.MetricsRepository {
			return sqRepo.NewMetricsRepository(settings, lookup)
		})
		return reg
	}); err != nil {
		return err
	}

	// Reports are written relative to the working directory
	if err := container.Provide(func() domainRepos.ReportRepository {
		return fsRepo.NewReportRepository(".")
	}); err != nil {
		return err
	}

	return nil
}
