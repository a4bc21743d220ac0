package config

import (
	"os"
	"strconv"

	"personadash/domain/persona"
	"personadash/domain/survey"
	"personadash/internal/errors"
)

// Config is the complete application configuration, read once at startup.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Tables TableConfig
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Port string
}

// UploadConfig bounds accepted uploads.
type UploadConfig struct {
	MaxBytes int64
}

// TableConfig points at optional JSON overrides for the two domain tables.
// Empty paths mean the built-in defaults.
type TableConfig struct {
	PatternTablePath string
	RuleTablePath    string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{Port: envOr("PORT", "8080")},
		Upload: UploadConfig{MaxBytes: 50 * 1024 * 1024},
		Tables: TableConfig{
			PatternTablePath: os.Getenv("PATTERN_TABLE_PATH"),
			RuleTablePath:    os.Getenv("RULE_TABLE_PATH"),
		},
	}

	if mbStr := os.Getenv("MAX_UPLOAD_MB"); mbStr != "" {
		mb, err := strconv.Atoi(mbStr)
		if err != nil || mb <= 0 {
			return nil, errors.ConfigInvalid("MAX_UPLOAD_MB must be a positive integer")
		}
		cfg.Upload.MaxBytes = int64(mb) * 1024 * 1024
	}

	return cfg, nil
}

// LoadTables hydrates the pattern and rule tables from their configured
// sources and validates both. Any defect here is fatal to the run: a
// silently incomplete rule table would bias every classification.
func (c *Config) LoadTables() (survey.PatternTable, persona.RuleTable, error) {
	patterns := survey.DefaultPatternTable()
	if path := c.Tables.PatternTablePath; path != "" {
		loaded, err := survey.LoadPatternTable(path)
		if err != nil {
			return survey.PatternTable{}, persona.RuleTable{}, errors.Wrap(
				errors.ConfigInvalid(err.Error()), "loading pattern table")
		}
		patterns = loaded
	}
	if err := patterns.Validate(); err != nil {
		return survey.PatternTable{}, persona.RuleTable{}, errors.Wrap(
			errors.ConfigInvalid(err.Error()), "validating pattern table")
	}

	rules := persona.DefaultRuleTable()
	if path := c.Tables.RuleTablePath; path != "" {
		loaded, err := persona.LoadRuleTable(path)
		if err != nil {
			return survey.PatternTable{}, persona.RuleTable{}, errors.Wrap(
				errors.ConfigInvalid(err.Error()), "loading rule table")
		}
		rules = loaded
	}
	if err := rules.Validate(); err != nil {
		return survey.PatternTable{}, persona.RuleTable{}, errors.Wrap(
			errors.ConfigInvalid(err.Error()), "validating rule table")
	}

	return patterns, rules, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
