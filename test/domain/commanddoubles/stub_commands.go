//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/sonarsize/internal/domain/commands"
	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

// StubBranchSizeCommand is a stub implementation of commands.BranchSize.
type StubBranchSizeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.BranchSizeOptions
}

var _ commands.BranchSize = (*StubBranchSizeCommand)(nil)

func (s *StubBranchSizeCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.BranchSizeOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubTotalSizeCommand is a stub implementation of commands.TotalSize.
type StubTotalSizeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.TotalSize = (*StubTotalSizeCommand)(nil)

func (s *StubTotalSizeCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	_ commands.TotalSizeOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.ExecuteErr
}

// StubTopFilesCommand is a stub implementation of commands.TopFiles.
type StubTopFilesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.TopFilesOptions
}

var _ commands.TopFiles = (*StubTopFilesCommand)(nil)

func (s *StubTopFilesCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.TopFilesOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubProjectSizeCommand is a stub implementation of commands.ProjectSize.
type StubProjectSizeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
}

var _ commands.ProjectSize = (*StubProjectSizeCommand)(nil)

func (s *StubProjectSizeCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	_ commands.ProjectSizeOptions,
) error {
	s.ExecuteCallCount++
	return s.ExecuteErr
}
