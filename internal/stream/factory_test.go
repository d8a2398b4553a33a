package stream

import (
	"context"
	"testing"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/solver"
	"github.com/rs/zerolog"
)

func TestNewStreamConsumer_ConfigErrors(t *testing.T) {
	logger := zerolog.Nop()
	exec := executor.NewExecutor(solver.New(), &logger)

	tests := []struct {
		name    string
		cfg     *StreamConfig
		wantErr string
	}{
		{name: "unsupported provider", cfg: &StreamConfig{Provider: "kafka"}, wantErr: "unsupported stream provider: kafka"},
		{name: "missing redis config", cfg: &StreamConfig{Provider: "redis"}, wantErr: "redis config required"},
		{name: "default provider is redis", cfg: &StreamConfig{}, wantErr: "redis config required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer, err := NewStreamConsumer(context.Background(), tt.cfg, exec, &logger)
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("expected error %q, got %v", tt.wantErr, err)
			}
			if consumer != nil {
				t.Error("expected nil consumer")
			}
		})
	}
}
