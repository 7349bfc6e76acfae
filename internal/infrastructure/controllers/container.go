package controllers

import (
	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	for _, constructor := range []interface{}{
		NewBranchSizeController,
		NewTotalSizeController,
		NewTopFilesController,
		NewProjectSizeController,
		NewReportController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
func NewControllers(
	branchSizeController *BranchSizeController,
	totalSizeController *TotalSizeController,
	topFilesController *TopFilesController,
	projectSizeController *ProjectSizeController,
) *[]entities.Controller {
	return &[]entities.Controller{
		branchSizeController,
		totalSizeController,
		topFilesController,
		projectSizeController,
	}
}
