package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/scheduler"
	"github.com/pacerapp/pacer/internal/service"
)

type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Planning   PlanningConfig   `yaml:"planning"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type PlanningConfig struct {
	WindowDays int `yaml:"window_days"`
	// HardCeiling caps hard sessions per week; 0 derives it from the fitness
	// level.
	HardCeiling      int     `yaml:"hard_ceiling"`
	DeloadHardFactor float64 `yaml:"deload_hard_factor"`
	DeloadEasyFactor float64 `yaml:"deload_easy_factor"`
	Timezone         string  `yaml:"timezone"`
}

type ClassifierConfig struct {
	// ExtraEnduranceTypes and ExtraStrengthTypes extend the built-in
	// type-to-modality lookup for exotic activity names.
	ExtraEnduranceTypes []string `yaml:"extra_endurance_types"`
	ExtraStrengthTypes  []string `yaml:"extra_strength_types"`
	// HighIntensityTypes replaces the fallback list of hard type patterns
	// when non-empty.
	HighIntensityTypes []string `yaml:"high_intensity_types"`
}

// Default returns the built-in configuration: database under ~/.pacer, a
// 7-day horizon, standard deload factors, UTC dates.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(home, ".pacer", "pacer.db")},
		Planning: PlanningConfig{
			WindowDays:       scheduler.DefaultWindowDays,
			DeloadHardFactor: scheduler.DefaultDeloadFactors().Hard,
			DeloadEasyFactor: scheduler.DefaultDeloadFactors().Easy,
			Timezone:         "UTC",
		},
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error: defaults apply. Env vars use the
// prefix PACER_:
//
//	PACER_DB, PACER_WINDOW_DAYS, PACER_HARD_CEILING, PACER_TZ
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PACER_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("PACER_WINDOW_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Planning.WindowDays = days
		}
	}
	if v := os.Getenv("PACER_HARD_CEILING"); v != "" {
		if ceiling, err := strconv.Atoi(v); err == nil {
			cfg.Planning.HardCeiling = ceiling
		}
	}
	if v := os.Getenv("PACER_TZ"); v != "" {
		cfg.Planning.Timezone = v
	}
}

func (c *Config) validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Planning.WindowDays < 1 || c.Planning.WindowDays > scheduler.MaxWindowDays {
		return fmt.Errorf("planning.window_days must be 1-%d, got %d", scheduler.MaxWindowDays, c.Planning.WindowDays)
	}
	if c.Planning.HardCeiling < 0 || c.Planning.HardCeiling > 5 {
		return fmt.Errorf("planning.hard_ceiling must be 0-5, got %d", c.Planning.HardCeiling)
	}
	if f := c.Planning.DeloadHardFactor; f <= 0 || f > 1 {
		return fmt.Errorf("planning.deload_hard_factor must be in (0, 1], got %g", f)
	}
	if f := c.Planning.DeloadEasyFactor; f <= 0 || f > 1 {
		return fmt.Errorf("planning.deload_easy_factor must be in (0, 1], got %g", f)
	}
	if _, err := time.LoadLocation(c.Planning.Timezone); err != nil {
		return fmt.Errorf("planning.timezone: %w", err)
	}
	return nil
}

// Params resolves the configuration into planning parameters.
func (c *Config) Params() service.Params {
	loc, err := time.LoadLocation(c.Planning.Timezone)
	if err != nil {
		loc = time.UTC
	}

	rules := scheduler.DefaultTypeRules()
	for _, t := range c.Classifier.ExtraEnduranceTypes {
		rules.Modalities[t] = domain.ModalityEndurance
	}
	for _, t := range c.Classifier.ExtraStrengthTypes {
		rules.Modalities[t] = domain.ModalityStrength
	}
	if len(c.Classifier.HighIntensityTypes) > 0 {
		rules.HighIntensityTypes = c.Classifier.HighIntensityTypes
	}

	return service.Params{
		WindowDays:  c.Planning.WindowDays,
		HardCeiling: c.Planning.HardCeiling,
		DeloadFactors: scheduler.DeloadFactors{
			Hard: c.Planning.DeloadHardFactor,
			Easy: c.Planning.DeloadEasyFactor,
		},
		TypeRules: rules,
		Location:  loc,
	}
}
