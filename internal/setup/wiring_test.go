package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/config"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "AOC_API_PORT", "REDIS_ADDR", "REDIS_MAX_RETRIES", "AOC_REQUEST_STREAM", "HOSTNAME"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.APIPort != "18082" {
		t.Errorf("APIPort = %q", cfg.APIPort)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.RedisMaxRetries != 5 {
		t.Errorf("RedisMaxRetries = %d", cfg.RedisMaxRetries)
	}
	if cfg.RequestStream != "aoc-requests" || cfg.ConsumerName != "aoc-worker" {
		t.Errorf("unexpected stream defaults: %+v", cfg)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("AOC_API_PORT", "9000")
	t.Setenv("REDIS_MAX_RETRIES", "2")
	t.Setenv("HOSTNAME", "worker-7")

	cfg := LoadConfig()

	if cfg.APIPort != "9000" || cfg.RedisMaxRetries != 2 || cfg.ConsumerName != "worker-7" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestLoadConfig_BadIntFallsBack(t *testing.T) {
	t.Setenv("REDIS_MAX_RETRIES", "many")

	if got := LoadConfig().RedisMaxRetries; got != 5 {
		t.Errorf("RedisMaxRetries = %d, want 5", got)
	}
}

func TestBuildCatalog(t *testing.T) {
	cfg := &config.ChallengesConfig{
		Challenges: config.Challenges{
			Days: []config.DayConfig{
				{Day: 5, Name: "supply-stacks", Enabled: true},
				{Day: 3, Name: "rucksack-reorganization", Enabled: true},
				{Day: 4, Name: "camp-cleanup", Enabled: false},
				{Day: 9, Name: "rope-bridge", Enabled: true},
			},
		},
	}

	catalog := BuildCatalog(cfg, []int{3, 4, 5, 6}, newTestLogger())

	want := []models.ChallengeInfo{
		{Day: 5, Name: "supply-stacks"},
		{Day: 3, Name: "rucksack-reorganization"},
	}
	if diff := cmp.Diff(want, catalog); diff != "" {
		t.Errorf("BuildCatalog mismatch (-want +got):\n%s", diff)
	}
}

func TestWire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.yaml")
	yaml := `challenges:
  days:
    - day: 5
      name: supply-stacks
      enabled: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHALLENGES_CONFIG_PATH", path)

	deps, err := Wire(context.Background(), LoadConfig(), newTestLogger())
	if err != nil {
		t.Fatalf("Wire failed: %v", err)
	}
	if deps.Executor == nil || deps.Solver == nil || deps.Logger == nil {
		t.Fatalf("incomplete dependencies: %+v", deps)
	}
	if len(deps.Catalog) != 1 || deps.Catalog[0].Name != "supply-stacks" {
		t.Errorf("unexpected catalog: %+v", deps.Catalog)
	}

	answer, err := deps.Solver.Solve(5, 1, []string{"[A]", " 1 "})
	if err != nil || answer != "A" {
		t.Errorf("Solve = %q, %v", answer, err)
	}
}

func TestWire_MissingConfig(t *testing.T) {
	t.Setenv("CHALLENGES_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Wire(context.Background(), LoadConfig(), newTestLogger()); err == nil {
		t.Fatal("expected error for missing config")
	}
}
