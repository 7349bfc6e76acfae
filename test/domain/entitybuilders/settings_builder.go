//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	url         string
	token       string
	provider    string
	concurrency int
	reportFile  string
	retry       entities.RetrySettings
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
// Retries are disabled so failing tests do not sleep.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		url:         "http://sonarqube.test:9000",
		token:       "test-token",
		provider:    entities.DefaultProvider,
		concurrency: 1,
		reportFile:  entities.DefaultReportFile,
		retry: entities.RetrySettings{
			MaxAttempts: 1,
			WaitMin:     time.Millisecond,
			WaitMax:     time.Millisecond,
		},
	}
}

// WithURL sets the server address.
func (b *SettingsBuilder) WithURL(url string) *SettingsBuilder {
	b.url = url
	return b
}

// WithToken sets the explicit admin token.
func (b *SettingsBuilder) WithToken(token string) *SettingsBuilder {
	b.token = token
	return b
}

// WithProvider sets the metrics provider name.
func (b *SettingsBuilder) WithProvider(provider string) *SettingsBuilder {
	b.provider = provider
	return b
}

// WithConcurrency sets how many projects are queried in parallel.
func (b *SettingsBuilder) WithConcurrency(concurrency int) *SettingsBuilder {
	b.concurrency = concurrency
	return b
}

// WithReportFile sets the branch size report file name.
func (b *SettingsBuilder) WithReportFile(reportFile string) *SettingsBuilder {
	b.reportFile = reportFile
	return b
}

// WithMaxAttempts sets how many times a request is tried.
func (b *SettingsBuilder) WithMaxAttempts(attempts int) *SettingsBuilder {
	b.retry.MaxAttempts = attempts
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		URL:         b.url,
		Token:       b.token,
		Provider:    b.provider,
		Concurrency: b.concurrency,
		ReportFile:  b.reportFile,
		Timeout:     5 * time.Second,
		Retry:       b.retry,
	}
}
