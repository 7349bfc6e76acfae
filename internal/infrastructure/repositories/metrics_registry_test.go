//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	"github.com/rios0rios0/sonarsize/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/sonarsize/internal/infrastructure/repositories"
	builders "github.com/rios0rios0/sonarsize/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/sonarsize/test/infrastructure/repositorydoubles"
)

func TestMetricsRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should build the registered provider with the given settings", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyMetricsRepository{}
		var received *entities.Settings
		registry := infraRepos.NewMetricsRegistry()
		registry.Register("sonarqube", func(settings *entities.Settings) repositories.MetricsRepository {
			received = settings
			return spy
		})
		settings := builders.NewSettingsBuilder().BuildSettings()

		// when
		repo, err := registry.Get(settings)

		// then
		require.NoError(t, err)
		assert.Same(t, spy, repo)
		assert.Same(t, settings, received)
	})

	t.Run("should fail for an unknown provider", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewMetricsRegistry()
		settings := builders.NewSettingsBuilder().WithProvider("sonarcloud").BuildSettings()

		// when
		_, err := registry.Get(settings)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrConfig)
		assert.Contains(t, err.Error(), "sonarcloud")
	})

	t.Run("should list names alphabetically", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewMetricsRegistry()
		factory := func(_ *entities.Settings) repositories.MetricsRepository { return &doubles.SpyMetricsRepository{} }
		registry.Register("sonarqube", factory)
		registry.Register("other", factory)

		// when
		names := registry.Names()

		// then
		assert.Equal(t, []string{"other", "sonarqube"}, names)
	})
}
