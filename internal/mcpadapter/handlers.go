package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/models"
)

// SolveInput is the MCP tool input schema for solve_challenge.
type SolveInput struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"optional request identifier"`
	Day       int    `json:"day" jsonschema:"puzzle day (1-25)"`
	Part      int    `json:"part" jsonschema:"puzzle part: 1 or 2"`
	Input     string `json:"input" jsonschema:"raw puzzle input, lines separated by newlines"`
}

// SolveOutput reports the part as a number so it matches the input schema.
type SolveOutput struct {
	RequestID string        `json:"request_id"`
	Day       int           `json:"day"`
	Part      int           `json:"part"`
	Status    models.Status `json:"status"`
	Answer    string        `json:"answer,omitempty"`
	Error     string        `json:"error,omitempty"`
	Duration  int64         `json:"duration_ns"`
}

type ListInput struct{}

type ListOutput struct {
	Challenges []models.ChallengeInfo `json:"challenges"`
}

// NewSolveHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewSolveHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, SolveInput) (*mcp.CallToolResult, SolveOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in SolveInput) (*mcp.CallToolResult, SolveOutput, error) {
		return SolveResponse(ctx, exec, req, in)
	}
}

// SolveResponse runs one puzzle part. Puzzle failures surface as tool errors.
func SolveResponse(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	in SolveInput,
) (*mcp.CallToolResult, SolveOutput, error) {
	part := challenge.Part(in.Part)
	if part != challenge.PartOne && part != challenge.PartTwo {
		return nil, SolveOutput{}, fmt.Errorf("invalid part %d (expected 1 or 2)", in.Part)
	}

	solveCtx := executor.Normalize(models.SolveRequest{
		RequestID: in.RequestID,
		Day:       in.Day,
		Part:      part,
		Input:     in.Input,
	})

	result, err := exec.Execute(ctx, solveCtx)
	return nil, toOutput(result), err
}

// NewListHandler returns a tool handler listing the given catalog.
func NewListHandler(catalog []models.ChallengeInfo) func(context.Context, *mcp.CallToolRequest, ListInput) (*mcp.CallToolResult, ListOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, ListOutput, error) {
		return nil, ListOutput{Challenges: catalog}, nil
	}
}

func toOutput(result models.SolveResult) SolveOutput {
	return SolveOutput{
		RequestID: result.ID,
		Day:       result.Day,
		Part:      int(result.Part),
		Status:    result.Status,
		Answer:    result.Answer,
		Error:     result.Error,
		Duration:  result.Duration.Nanoseconds(),
	}
}
