package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/sonarsize/internal/domain/entities"
)

// Flag names shared by every controller.
const (
	FlagConfig      = "config"
	FlagToken       = "sonarqube-admin-token"
	FlagURL         = "sonarqube-url"
	FlagConcurrency = "concurrency"
	FlagReportFile  = "report-file"
	FlagVerbose     = "verbose"
)

// AddPersistentFlags registers the flags every command understands.
func AddPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(FlagConfig, "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String(FlagToken, "",
		"Token with admin privileges (or set "+entities.TokenEnvVar+" env var)")
	cmd.PersistentFlags().String(FlagURL, entities.DefaultURL,
		"The address of the SonarQube instance")
	cmd.PersistentFlags().Int(FlagConcurrency, 1,
		"Number of projects queried in parallel")
	cmd.PersistentFlags().String(FlagReportFile, entities.DefaultReportFile,
		"File the branch size report is written to")
	cmd.PersistentFlags().BoolP(FlagVerbose, "v", false,
		"Enable verbose output")
}

// loadSettings reads the config file, if any, and applies flag overrides on top.
// Flags only win when they were set explicitly.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString(FlagConfig)
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}

	settings := entities.NewDefaultSettings()
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	if token, _ := flags.GetString(FlagToken); token != "" {
		settings.Token = token
	}
	if flags.Changed(FlagURL) {
		settings.URL, _ = flags.GetString(FlagURL)
	}
	if flags.Changed(FlagConcurrency) {
		settings.Concurrency, _ = flags.GetInt(FlagConcurrency)
	}
	if flags.Changed(FlagReportFile) {
		settings.ReportFile, _ = flags.GetString(FlagReportFile)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
