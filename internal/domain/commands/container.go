package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []interface{}{
		NewBranchSizeCommand,
		NewTotalSizeCommand,
		NewTopFilesCommand,
		NewProjectSizeCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *BranchSizeCommand) BranchSize {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *TotalSizeCommand) TotalSize {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *TopFilesCommand) TopFiles {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ProjectSizeCommand) ProjectSize {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
