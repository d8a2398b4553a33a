package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "challenges.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadChallengesConfig_Success(t *testing.T) {
	path := writeConfig(t, `challenges:
  input_dir: /data/aoc
  days:
    - day: 5
      name: supply-stacks
      enabled: true
    - day: 6
      name: tuning-trouble
      enabled: false
      input: signal.txt
`)
	t.Setenv("CHALLENGES_CONFIG_PATH", path)

	cfg, err := LoadChallengesConfig()
	if err != nil {
		t.Fatalf("LoadChallengesConfig() failed: %v", err)
	}

	if cfg.Challenges.Year != 2022 {
		t.Errorf("Expected default year 2022, got %d", cfg.Challenges.Year)
	}
	if len(cfg.Challenges.Days) != 2 {
		t.Fatalf("Expected 2 days, got %d", len(cfg.Challenges.Days))
	}
	if cfg.Challenges.Days[0].Input != "day05.txt" {
		t.Errorf("Expected default input day05.txt, got %s", cfg.Challenges.Days[0].Input)
	}

	enabled := cfg.Enabled()
	if len(enabled) != 1 || enabled[0].Name != "supply-stacks" {
		t.Errorf("Expected only supply-stacks enabled, got %+v", enabled)
	}

	path6, ok := cfg.InputPath(6)
	if !ok || path6 != filepath.Join("/data/aoc", "signal.txt") {
		t.Errorf("InputPath(6) = %s, %v", path6, ok)
	}
	if _, ok := cfg.InputPath(9); ok {
		t.Error("InputPath(9) should not resolve")
	}
}

func TestLoadChallengesConfig_DefaultInputDir(t *testing.T) {
	cfg, err := LoadChallengesConfigFrom(writeConfig(t, "challenges:\n  days:\n    - day: 3\n      enabled: true\n"))
	if err != nil {
		t.Fatalf("LoadChallengesConfigFrom() failed: %v", err)
	}

	path, _ := cfg.InputPath(3)
	if path != filepath.Join("inputs", "day03.txt") {
		t.Errorf("InputPath(3) = %s", path)
	}
}

func TestLoadChallengesConfig_FileNotFound(t *testing.T) {
	t.Setenv("CHALLENGES_CONFIG_PATH", "/nonexistent/path/challenges.yaml")

	_, err := LoadChallengesConfig()
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadChallengesConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `challenges:
  days:
    - day: 5
      enabled: true
    wrong_level
`)

	_, err := LoadChallengesConfigFrom(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		days    []DayConfig
		wantErr string
	}{
		{"no days", nil, "no days configured"},
		{"day zero", []DayConfig{{Day: 0}}, "invalid day"},
		{"day too large", []DayConfig{{Day: 26}}, "invalid day"},
		{"duplicate", []DayConfig{{Day: 5}, {Day: 5}}, "duplicate day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ChallengesConfig{Challenges: Challenges{Days: tt.days}}

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Expected validation error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected %q error, got: %v", tt.wantErr, err)
			}
		})
	}
}
