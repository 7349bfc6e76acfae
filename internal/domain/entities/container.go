package entities

import (
	"os"

	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings depend on flags, so controllers build them per invocation
	return container.Provide(func() EnvLookup {
		return os.LookupEnv
	})
}
