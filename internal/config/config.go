package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

const maxWorkers = 64

// Config holds all reshape settings, populated from environment variables.
// Command-line flags may override fields before Validate is called.
type Config struct {
	OutputDir        string
	Elements         []string
	Workers          int
	Calendar         string
	StrictDuplicates bool
	MetricsFile      string
	LogLevel         string
	LogFormat        string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	workers, err := strconv.Atoi(sharedcfg.EnvOrDefault("GHCN_WORKERS", "4"))
	if err != nil {
		return nil, errors.New("invalid GHCN_WORKERS")
	}

	strict, err := strconv.ParseBool(sharedcfg.EnvOrDefault("GHCN_STRICT_DUPLICATES", "false"))
	if err != nil {
		return nil, errors.New("invalid GHCN_STRICT_DUPLICATES")
	}

	cfg := &Config{
		OutputDir:        sharedcfg.EnvOrDefault("GHCN_OUTPUT_DIR", "output"),
		Elements:         ParseElements(sharedcfg.EnvOrDefault("GHCN_ELEMENTS", "")),
		Workers:          workers,
		Calendar:         sharedcfg.EnvOrDefault("GHCN_CALENDAR", "simple"),
		StrictDuplicates: strict,
		MetricsFile:      sharedcfg.EnvOrDefault("GHCN_METRICS_FILE", ""),
		LogLevel:         sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("GHCN_OUTPUT_DIR is required")
	}
	if c.Workers < 1 || c.Workers > maxWorkers {
		return fmt.Errorf("GHCN_WORKERS must be between 1 and %d", maxWorkers)
	}
	switch c.Calendar {
	case "simple", "gregorian":
	default:
		return fmt.Errorf("invalid GHCN_CALENDAR %q: want simple or gregorian", c.Calendar)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: want text or json", c.LogFormat)
	}
	return nil
}

// ParseElements splits a comma-separated element list, trimming blanks and
// upper-casing codes.
func ParseElements(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
