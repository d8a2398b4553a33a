package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const (
	DefaultConfigPath = "configs/challenges.yaml"
	defaultYear       = 2022
	defaultInputDir   = "inputs"
)

func LoadChallengesConfig() (*ChallengesConfig, error) {
	path := os.Getenv("CHALLENGES_CONFIG_PATH")
	if path == "" {
		path = DefaultConfigPath
	}

	return LoadChallengesConfigFrom(path)
}

func LoadChallengesConfigFrom(path string) (*ChallengesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg ChallengesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *ChallengesConfig) {
	if cfg.Challenges.Year == 0 {
		cfg.Challenges.Year = defaultYear
	}
	if cfg.Challenges.InputDir == "" {
		cfg.Challenges.InputDir = defaultInputDir
	}

	for i := range cfg.Challenges.Days {
		day := &cfg.Challenges.Days[i]
		if day.Input == "" {
			day.Input = fmt.Sprintf("day%02d.txt", day.Day)
		}
	}
}

func (c *ChallengesConfig) Validate() error {
	if len(c.Challenges.Days) == 0 {
		return fmt.Errorf("no days configured")
	}

	seen := make(map[int]bool)
	for i, day := range c.Challenges.Days {
		if day.Day < 1 || day.Day > 25 {
			return fmt.Errorf("day at index %d: invalid day %d (expected 1-25)", i, day.Day)
		}
		if seen[day.Day] {
			return fmt.Errorf("duplicate day %d", day.Day)
		}
		seen[day.Day] = true
	}

	return nil
}

// Enabled returns the enabled days in file order.
func (c *ChallengesConfig) Enabled() []DayConfig {
	var days []DayConfig
	for _, day := range c.Challenges.Days {
		if day.Enabled {
			days = append(days, day)
		}
	}
	return days
}

// InputPath resolves the input file of day against the input directory.
func (c *ChallengesConfig) InputPath(day int) (string, bool) {
	for _, d := range c.Challenges.Days {
		if d.Day != day {
			continue
		}
		if filepath.IsAbs(d.Input) {
			return d.Input, true
		}
		return filepath.Join(c.Challenges.InputDir, d.Input), true
	}
	return "", false
}
