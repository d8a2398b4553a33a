package mcpadapter

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/models"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/solver"
	"github.com/rs/zerolog"
)

func newTestExecutor() *executor.Executor {
	logger := zerolog.Nop()
	return executor.NewExecutor(solver.New(), &logger)
}

func TestSolveResponse(t *testing.T) {
	exec := newTestExecutor()

	in := SolveInput{
		RequestID: "mcp-1",
		Day:       4,
		Part:      2,
		Input:     "2-4,6-8\n2-3,4-5\n5-7,7-9\n2-8,3-7\n6-6,4-6\n2-6,4-8\n",
	}

	res, out, err := SolveResponse(context.Background(), exec, nil, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Errorf("expected nil tool result, got %+v", res)
	}
	if out.Answer != "4" || out.Status != models.StatusSolved {
		t.Errorf("unexpected output: %+v", out)
	}
	if out.RequestID != "mcp-1" || out.Day != 4 || out.Part != 2 {
		t.Errorf("request fields not echoed: %+v", out)
	}
}

func TestSolveResponse_Errors(t *testing.T) {
	exec := newTestExecutor()

	t.Run("invalid part", func(t *testing.T) {
		_, _, err := SolveResponse(context.Background(), exec, nil, SolveInput{Day: 5, Part: 3, Input: "x"})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unknown day", func(t *testing.T) {
		_, out, err := SolveResponse(context.Background(), exec, nil, SolveInput{Day: 9, Part: 1, Input: "x"})
		var notImplemented *challenge.NotImplementedError
		if !errors.As(err, &notImplemented) {
			t.Fatalf("expected NotImplementedError, got %v", err)
		}
		if out.Status != models.StatusFailed || out.Error == "" {
			t.Errorf("expected failed output, got %+v", out)
		}
		if out.RequestID == "" {
			t.Error("expected a generated request id")
		}
	})
}

func TestListHandler(t *testing.T) {
	catalog := []models.ChallengeInfo{{Day: 3}, {Day: 5, Name: "supply-stacks"}}

	handler := NewListHandler(catalog)
	_, out, err := handler(context.Background(), nil, ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Challenges) != 2 || out.Challenges[1].Name != "supply-stacks" {
		t.Errorf("unexpected challenges: %+v", out.Challenges)
	}
}
