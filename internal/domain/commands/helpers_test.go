//go:build unit

package commands_test

import (
	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	"github.com/rios0rios0/sonarsize/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/sonarsize/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/sonarsize/test/infrastructure/repositorydoubles"
)

func registryWith(spy *doubles.SpyMetricsRepository) *infraRepos.MetricsRegistry {
	registry := infraRepos.NewMetricsRegistry()
	registry.Register(entities.DefaultProvider, func(_ *entities.Settings) repositories.MetricsRepository {
		return spy
	})
	return registry
}

// scenarioAB is the two-project instance used throughout the report tests.
func scenarioAB() *doubles.SpyMetricsRepository {
	return &doubles.SpyMetricsRepository{
		ProjectKeys: []string{"A", "B"},
		Branches: map[string][]string{
			"A": {"main", "feature"},
			"B": {"main"},
		},
		BranchLOC: map[string]map[string]int{
			"A": {"main": 100, "feature": 150},
			"B": {"main": 50},
		},
	}
}
