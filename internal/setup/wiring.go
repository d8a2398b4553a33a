package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/config"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/models"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/solver"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel        string
	LogFormat       string
	APIPort         string
	RedisAddr       string
	RedisPassword   string
	RedisMaxRetries int
	StreamProvider  string
	RequestStream   string
	ResultStream    string
	ConsumerGroup   string
	ConsumerName    string
}

type Dependencies struct {
	Solver     *solver.Solver
	Executor   *executor.Executor
	Challenges *config.ChallengesConfig
	Catalog    []models.ChallengeInfo
	Logger     *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "console"),
		APIPort:         getEnv("AOC_API_PORT", "18082"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisMaxRetries: getEnvInt("REDIS_MAX_RETRIES", 5),
		StreamProvider:  getEnv("STREAM_PROVIDER", "redis"),
		RequestStream:   getEnv("AOC_REQUEST_STREAM", "aoc-requests"),
		ResultStream:    getEnv("AOC_RESULT_STREAM", "aoc-results"),
		ConsumerGroup:   getEnv("AOC_CONSUMER_GROUP", "aoc-group"),
		ConsumerName:    getEnv("HOSTNAME", "aoc-worker"),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	// Load challenges configuration from YAML
	challengesConfig, err := config.LoadChallengesConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load challenges config: %w", err)
	}

	s := solver.New()
	exec := executor.NewExecutor(s, logger)

	return &Dependencies{
		Solver:     s,
		Executor:   exec,
		Challenges: challengesConfig,
		Catalog:    BuildCatalog(challengesConfig, s.Days(), logger),
		Logger:     logger,
	}, nil
}

// BuildCatalog lists the enabled days that have an implementation.
func BuildCatalog(cfg *config.ChallengesConfig, implemented []int, logger *zerolog.Logger) []models.ChallengeInfo {
	registered := make(map[int]bool, len(implemented))
	for _, day := range implemented {
		registered[day] = true
	}

	catalog := make([]models.ChallengeInfo, 0, len(implemented))
	for _, day := range cfg.Enabled() {
		if !registered[day.Day] {
			logger.Warn().Int("day", day.Day).Msg("Configured day has no implementation, skipping")
			continue
		}
		catalog = append(catalog, models.ChallengeInfo{
			Day:         day.Day,
			Name:        day.Name,
			Description: day.Description,
		})
	}

	return catalog
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
