package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	domainRepos "github.com/rios0rios0/sonarsize/internal/domain/repositories"
)

// MetricsFactory creates a MetricsRepository for the given settings.
type MetricsFactory func(settings *entities.Settings) domainRepos.MetricsRepository

// MetricsRegistry manages all registered metrics backends.
type MetricsRegistry struct {
	providers map[string]MetricsFactory
}

// NewMetricsRegistry creates an empty metrics registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		providers: make(map[string]MetricsFactory),
	}
}

// Register adds a metrics factory under the given name (e.g. "sonarqube").
func (r *MetricsRegistry) Register(name string, factory MetricsFactory) {
	r.providers[name] = factory
}

// Get returns a configured metrics repository for settings.Provider.
func (r *MetricsRegistry) Get(settings *entities.Settings) (domainRepos.MetricsRepository, error) {
	factory, ok := r.providers[settings.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: unknown metrics provider %q", entities.ErrConfig, settings.Provider)
	}
	return factory(settings), nil
}

// Names returns the registered provider names in alphabetical order.
func (r *MetricsRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
