//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SizedEntityBuilder helps create test files or projects with a size.
type SizedEntityBuilder struct {
	*testkit.BaseBuilder
	identifier    string
	numberOfLines int
}

// NewSizedEntityBuilder creates a new builder with sensible defaults.
func NewSizedEntityBuilder() *SizedEntityBuilder {
	return &SizedEntityBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		identifier:    "src/main.go",
		numberOfLines: 100,
	}
}

// WithIdentifier sets the path or project key.
func (b *SizedEntityBuilder) WithIdentifier(identifier string) *SizedEntityBuilder {
	b.identifier = identifier
	return b
}

// WithNumberOfLines sets the lines of code.
func (b *SizedEntityBuilder) WithNumberOfLines(lines int) *SizedEntityBuilder {
	b.numberOfLines = lines
	return b
}

// Build creates the entity (satisfies testkit.Builder interface).
func (b *SizedEntityBuilder) Build() interface{} {
	return b.BuildSizedEntity()
}

// BuildSizedEntity creates the entity with a concrete return type.
func (b *SizedEntityBuilder) BuildSizedEntity() entities.SizedEntity {
	return entities.SizedEntity{
		Identifier:    b.identifier,
		NumberOfLines: b.numberOfLines,
	}
}
