package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/peepsched/schedval/pkg/validator"
)

var defaultEnvLoaded sync.Once

// Settings holds the per-run validation configuration. Values come from a
// YAML settings file, environment variables, or both; the environment wins.
type Settings struct {
	// Year is the reference year for event strings that omit one. Zero
	// means the current year in the configured timezone.
	Year int `env:"SCHEDVAL_YEAR" yaml:"year"`
	// Timezone is the IANA zone applied to every parsed date-time.
	Timezone string `env:"SCHEDVAL_TZ" envDefault:"America/New_York" yaml:"timezone"`
	// ClassDurations is the set of allowed class lengths in minutes.
	ClassDurations []int `env:"SCHEDVAL_CLASS_DURATIONS" envDefault:"60,90,120" yaml:"class_durations"`
}

// Load fills s from environment variables, loading a .env file first when
// one exists.
func Load(s *Settings) error {
	if s == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if err := env.Parse(s); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadFile fills s from a YAML settings file, then applies environment
// overrides on top.
func LoadFile(path string, s *Settings) error {
	if s == nil {
		return ErrNilPointer
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingConfig, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return Load(s)
}

// Context resolves the settings into the immutable validation context used
// by every parse and validate call.
func (s Settings) Context() (validator.Context, error) {
	tz, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return validator.Context{}, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	year := s.Year
	if year == 0 {
		year = time.Now().In(tz).Year()
	}
	if len(s.ClassDurations) == 0 {
		return validator.Context{}, ErrNoClassDurations
	}
	return validator.Context{
		Year:           year,
		TZ:             tz,
		ClassDurations: s.ClassDurations,
	}, nil
}
