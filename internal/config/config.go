// Package config loads the pawfuel YAML configuration: the pet profile the
// daily targets are computed for, planning options, and logging settings.
// Validation lives here, at the edge; the nutrition model itself accepts
// any numeric input.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rgreer/pawfuel/internal/logging"
	"github.com/rgreer/pawfuel/internal/nutrition"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "pawfuel.yaml"

// Factor bounds: feeding 0% of RER is meaningless, and anything above 100%
// of ideal-weight RER is not a weight-loss plan.
const (
	minWeightLossFactor = 0.0
	maxWeightLossFactor = 1.0
)

// Config validation errors.
var (
	ErrProfileNameRequired = errors.New("profile name is required")
	ErrWeightNotPositive   = errors.New("weight must be greater than 0")
	ErrFactorOutOfRange    = errors.New("weight_loss_factor must be in (0, 1]")
)

// ProfileConfig describes the pet in the config file.
type ProfileConfig struct {
	Name            string  `yaml:"name"`
	CurrentWeightKg float64 `yaml:"current_weight_kg"`
	IdealWeightKg   float64 `yaml:"ideal_weight_kg"`
	Neutered        bool    `yaml:"neutered"`
	Notes           string  `yaml:"notes,omitempty"`
}

// Validate checks the profile section.
func (p ProfileConfig) Validate() error {
	if p.Name == "" {
		return ErrProfileNameRequired
	}
	if p.CurrentWeightKg <= 0 {
		return fmt.Errorf("%w: current_weight_kg is %.2f", ErrWeightNotPositive, p.CurrentWeightKg)
	}
	if p.IdealWeightKg <= 0 {
		return fmt.Errorf("%w: ideal_weight_kg is %.2f", ErrWeightNotPositive, p.IdealWeightKg)
	}
	return nil
}

// ToDogProfile converts the config section into the model type.
func (p ProfileConfig) ToDogProfile() nutrition.DogProfile {
	return nutrition.DogProfile{
		Name:            p.Name,
		CurrentWeightKg: p.CurrentWeightKg,
		IdealWeightKg:   p.IdealWeightKg,
		Neutered:        p.Neutered,
		Notes:           p.Notes,
	}
}

// PlanConfig holds planning options.
type PlanConfig struct {
	// WeightLossFactor scales ideal-weight RER into the daily feeding
	// target. Defaults to nutrition.DefaultWeightLossFactor.
	WeightLossFactor float64 `yaml:"weight_loss_factor,omitempty"`
}

// Validate checks the plan section.
func (p PlanConfig) Validate() error {
	if p.WeightLossFactor <= minWeightLossFactor || p.WeightLossFactor > maxWeightLossFactor {
		return fmt.Errorf("%w: got %.2f", ErrFactorOutOfRange, p.WeightLossFactor)
	}
	return nil
}

// Config is the full pawfuel configuration.
type Config struct {
	Profile ProfileConfig  `yaml:"profile"`
	Plan    PlanConfig     `yaml:"plan,omitempty"`
	Logging logging.Config `yaml:"logging,omitempty"`
}

// Default returns the configuration used when no file is present: the
// sample profile from the planning notes and standard logging.
func Default() *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:            "Maple",
			CurrentWeightKg: 38.5,
			IdealWeightKg:   35.0,
			Neutered:        true,
		},
		Plan: PlanConfig{
			WeightLossFactor: nutrition.DefaultWeightLossFactor,
		},
		Logging: logging.Config{
			Level:  logging.DefaultLevel,
			Format: logging.FormatConsole,
		},
	}
}

// Load reads the config file at path, layering it over Default. A missing
// file is not an error; defaults are returned unchanged. A file that
// exists but fails to parse or validate is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Zero factor means the file omitted it; keep the default.
	if cfg.Plan.WeightLossFactor == 0 {
		cfg.Plan.WeightLossFactor = nutrition.DefaultWeightLossFactor
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Profile.Validate(); err != nil {
		return err
	}
	return c.Plan.Validate()
}
