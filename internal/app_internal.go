package internal

import (
	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	"github.com/rios0rios0/sonarsize/internal/infrastructure/controllers"
)

// AppInternal holds everything the CLI needs to mount its commands.
type AppInternal struct {
	controllers      *[]entities.Controller
	reportController *controllers.ReportController
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(
	subcommands *[]entities.Controller,
	reportController *controllers.ReportController,
) *AppInternal {
	return &AppInternal{
		controllers:      subcommands,
		reportController: reportController,
	}
}

// GetControllers returns the controllers mounted as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}

// GetReportController returns the controller behind the root command flags.
func (it *AppInternal) GetReportController() *controllers.ReportController {
	return it.reportController
}
