//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

func envOf(values map[string]string) entities.EnvLookup {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestResolveToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		explicit  string
		env       map[string]string
		expected  string
		expectErr bool
	}{
		{
			name:     "should prefer the explicit token",
			explicit: "cli-token",
			env:      map[string]string{entities.TokenEnvVar: "env-token"},
			expected: "cli-token",
		},
		{
			name:     "should fall back to the environment variable",
			env:      map[string]string{entities.TokenEnvVar: "env-token"},
			expected: "env-token",
		},
		{
			name:      "should fail when neither is present",
			env:       map[string]string{},
			expectErr: true,
		},
		{
			name:      "should fail when the environment variable is empty",
			env:       map[string]string{entities.TokenEnvVar: ""},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			lookup := envOf(tt.env)

			// when
			token, err := entities.ResolveToken(tt.explicit, lookup)

			// then
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, entities.ErrConfig)
				assert.Contains(t, err.Error(), entities.TokenEnvVar)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}

	t.Run("should fail without a lookup function", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ResolveToken("", nil)

		// then
		assert.ErrorIs(t, err, entities.ErrConfig)
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should fill missing values with defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "sonarsize.yaml")
		require.NoError(t, os.WriteFile(path, []byte("url: https://sonar.example.com\n"), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://sonar.example.com", settings.URL)
		assert.Equal(t, entities.DefaultProvider, settings.Provider)
		assert.Equal(t, entities.DefaultReportFile, settings.ReportFile)
		assert.Equal(t, 1, settings.Concurrency)
		assert.Equal(t, 3, settings.Retry.MaxAttempts)
		assert.Empty(t, settings.Token)
	})

	t.Run("should read every field", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "sonarsize.yaml")
		content := `url: https://sonar.example.com
token: inline-token
concurrency: 4
report_file: out.csv
timeout: 5s
retry:
  max_attempts: 5
  wait_min: 2s
  wait_max: 20s
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "inline-token", settings.Token)
		assert.Equal(t, 4, settings.Concurrency)
		assert.Equal(t, "out.csv", settings.ReportFile)
		assert.Equal(t, 5*time.Second, settings.Timeout)
		assert.Equal(t, 5, settings.Retry.MaxAttempts)
		assert.Equal(t, 2*time.Second, settings.Retry.WaitMin)
		assert.Equal(t, 20*time.Second, settings.Retry.WaitMax)
	})

	t.Run("should expand an environment variable in the token", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_SONARSIZE_TOKEN", "from-env")
		path := filepath.Join(t.TempDir(), "sonarsize.yaml")
		require.NoError(t, os.WriteFile(path, []byte("token: ${TEST_SONARSIZE_TOKEN}\n"), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "from-env", settings.Token)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for invalid yaml", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "sonarsize.yaml")
		require.NoError(t, os.WriteFile(path, []byte("url: [unterminated\n"), 0o600))

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should fail validation for a zero concurrency", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "sonarsize.yaml")
		require.NoError(t, os.WriteFile(path, []byte("concurrency: 0\n"), 0o600))

		// when
		_, err := entities.NewSettings(path)

		// then
		assert.ErrorIs(t, err, entities.ErrConfig)
	})
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(settings *entities.Settings)
		message string
	}{
		{
			name:    "should reject an empty url",
			mutate:  func(s *entities.Settings) { s.URL = "" },
			message: "url is required",
		},
		{
			name:    "should reject a relative url",
			mutate:  func(s *entities.Settings) { s.URL = "sonar.example.com" },
			message: "not an absolute address",
		},
		{
			name:    "should reject zero attempts",
			mutate:  func(s *entities.Settings) { s.Retry.MaxAttempts = 0 },
			message: "max_attempts",
		},
		{
			name: "should reject an inverted wait range",
			mutate: func(s *entities.Settings) {
				s.Retry.WaitMin = time.Minute
				s.Retry.WaitMax = time.Second
			},
			message: "wait_max",
		},
		{
			name:    "should reject an empty report file",
			mutate:  func(s *entities.Settings) { s.ReportFile = "" },
			message: "report_file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			settings := entities.NewDefaultSettings()
			tt.mutate(settings)

			// when
			err := settings.Validate()

			// then
			require.Error(t, err)
			assert.ErrorIs(t, err, entities.ErrConfig)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	t.Run("should accept the defaults", func(t *testing.T) {
		t.Parallel()

		// when
		err := entities.NewDefaultSettings().Validate()

		// then
		assert.NoError(t, err)
	})
}

func TestExpandToken(t *testing.T) {
	t.Run("should return inline token unchanged", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.ExpandToken("squ_abc123")

		// then
		assert.Equal(t, "squ_abc123", result)
	})

	t.Run("should read token from file when path exists", func(t *testing.T) {
		t.Parallel()

		// given
		tokenFile := filepath.Join(t.TempDir(), "token.key")
		require.NoError(t, os.WriteFile(tokenFile, []byte("  file-based-token  \n"), 0o600))

		// when
		result := entities.ExpandToken(tokenFile)

		// then
		assert.Equal(t, "file-based-token", result)
	})

	t.Run("should return empty for unset env var", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.ExpandToken("${DEFINITELY_NOT_SET_VAR_12345}")

		// then
		assert.Empty(t, result)
	})
}
