package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/jecli.log"`
}

// AnalysisConfig contains the analyzer defaults. CLI flags override these.
type AnalysisConfig struct {
	InputFile string `yaml:"input_file" envconfig:"INPUT_FILE" default:"je_samples.xlsx" validate:"required"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"outputs" validate:"required"`
	// DateRatio is the minimum fraction of values that must parse as dates
	// for a column to be reported as a date column.
	DateRatio float64 `yaml:"date_ratio" envconfig:"DATE_RATIO" default:"0.5" validate:"min=0,max=1"`
}

// Load loads configuration from environment variables and an optional config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("JE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays populated file values onto the env-derived config.
// envconfig fills struct defaults for unset variables, so the file is the
// stronger signal when both are present.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Analysis.InputFile != "" {
		envConfig.Analysis.InputFile = fileConfig.Analysis.InputFile
	}
	if fileConfig.Analysis.OutputDir != "" {
		envConfig.Analysis.OutputDir = fileConfig.Analysis.OutputDir
	}
	if fileConfig.Analysis.DateRatio != 0 {
		envConfig.Analysis.DateRatio = fileConfig.Analysis.DateRatio
	}
	return envConfig
}

// getConfigFilePath returns the config file location, overridable for tests
func getConfigFilePath() string {
	if path := os.Getenv("JE_CONFIG_FILE"); path != "" {
		return path
	}
	return "jecli.yaml"
}

// validate checks the configuration using struct tags
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	return nil
}
