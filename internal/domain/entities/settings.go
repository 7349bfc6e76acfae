package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultURL is the SonarQube address used when none is configured.
	DefaultURL = "http://localhost:9000"
	// DefaultProvider is the metrics backend used when none is configured.
	DefaultProvider = "sonarqube"
	// DefaultReportFile is where the branch size report is written.
	DefaultReportFile = "branch_size_report.csv"
	// TokenEnvVar holds the admin token when none is passed explicitly.
	TokenEnvVar = "SONARQUBE_ADMIN_TOKEN"

	defaultConcurrency    = 1
	defaultRetryAttempts  = 3
	defaultRetryWaitMin   = time.Second
	defaultRetryWaitMax   = 10 * time.Second
	defaultRequestTimeout = 30 * time.Second
)

// Settings is the configuration of a single invocation.
type Settings struct {
	URL         string        `yaml:"url"`
	Token       string        `yaml:"token"` // Inline, ${ENV_VAR}, or file path; optional
	Provider    string        `yaml:"provider"`
	Concurrency int           `yaml:"concurrency"`
	ReportFile  string        `yaml:"report_file"`
	Timeout     time.Duration `yaml:"timeout"`
	Retry       RetrySettings `yaml:"retry"`
}

// RetrySettings controls the retry/backoff policy of the metrics client.
type RetrySettings struct {
	MaxAttempts int           `yaml:"max_attempts"`
	WaitMin     time.Duration `yaml:"wait_min"`
	WaitMax     time.Duration `yaml:"wait_max"`
}

// EnvLookup reads an environment variable; os.LookupEnv satisfies it.
type EnvLookup func(key string) (string, bool)

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		URL:         DefaultURL,
		Provider:    DefaultProvider,
		Concurrency: defaultConcurrency,
		ReportFile:  DefaultReportFile,
		Timeout:     defaultRequestTimeout,
		Retry: RetrySettings{
			MaxAttempts: defaultRetryAttempts,
			WaitMin:     defaultRetryWaitMin,
			WaitMax:     defaultRetryWaitMax,
		},
	}
}

// NewSettings reads a YAML config file on top of the defaults.
// The token field may reference environment variables or a file holding the token.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Token = expandToken(settings.Token)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".sonarsize.yaml",
		".sonarsize.yml",
		"sonarsize.yaml",
		"sonarsize.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks the settings for values the rest of the tool cannot work with.
func (it *Settings) Validate() error {
	if it.URL == "" {
		return fmt.Errorf("%w: url is required", ErrConfig)
	}
	parsed, err := url.Parse(it.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: url %q is not an absolute address", ErrConfig, it.URL)
	}
	if it.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrConfig, it.Concurrency)
	}
	if it.Retry.MaxAttempts < 1 {
		return fmt.Errorf("%w: retry.max_attempts must be at least 1, got %d", ErrConfig, it.Retry.MaxAttempts)
	}
	if it.Retry.WaitMax < it.Retry.WaitMin {
		return fmt.Errorf("%w: retry.wait_max must not be lower than retry.wait_min", ErrConfig)
	}
	if it.ReportFile == "" {
		return fmt.Errorf("%w: report_file is required", ErrConfig)
	}
	return nil
}

// ResolveToken picks the admin token: the explicit value wins, then the
// SONARQUBE_ADMIN_TOKEN variable found through lookup. Neither present is ErrConfig.
func ResolveToken(explicit string, lookup EnvLookup) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if lookup != nil {
		if value, ok := lookup(TokenEnvVar); ok && value != "" {
			return value, nil
		}
	}
	return "", fmt.Errorf(
		"%w: no admin token; pass --sonarqube-admin-token or set %s", ErrConfig, TokenEnvVar,
	)
}

// expandToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func expandToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
