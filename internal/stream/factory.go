package stream

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/executor"
	red "github.com/povarna/generative-ai-agents/aoc-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/stream/redis"
	"github.com/rs/zerolog"
)

const DefaultProvider = "redis"

type StreamConfig struct {
	Provider    string // redis only for now
	MaxRetries  int
	RedisConfig *redis.RedisStreamConfig
}

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	exec *executor.Executor,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = DefaultProvider
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := red.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			cfg.MaxRetries,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, exec, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
