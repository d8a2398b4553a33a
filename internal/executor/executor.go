package executor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/input"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

// Solver computes the answer of one puzzle part
type Solver interface {
	Solve(day int, part challenge.Part, lines []string) (string, error)
}

type Executor struct {
	solver Solver
	logger *zerolog.Logger
}

func NewExecutor(solver Solver, logger *zerolog.Logger) *Executor {
	return &Executor{
		solver: solver,
		logger: logger,
	}
}

// Execute solves one request. The returned result is always populated; a
// failure is reported both in result.Error and as the returned error.
func (e *Executor) Execute(ctx context.Context, solveCtx models.SolveContext) (models.SolveResult, error) {
	id := solveCtx.RequestID
	e.logger.Info().
		Str("requestID", id).
		Int("day", solveCtx.Day).
		Stringer("part", solveCtx.Part).
		Int("lines", len(solveCtx.Lines)).
		Msg("starting solve")

	result := models.SolveResult{
		ID:   id,
		Day:  solveCtx.Day,
		Part: solveCtx.Part,
	}

	if err := ctx.Err(); err != nil {
		result.Status = models.StatusFailed
		result.Error = err.Error()
		return result, err
	}

	start := time.Now()
	answer, err := e.solver.Solve(solveCtx.Day, solveCtx.Part, solveCtx.Lines)
	result.Duration = time.Since(start)

	if err != nil {
		result.Status = models.StatusFailed
		result.Error = err.Error()
		e.logger.Warn().
			Err(err).
			Str("requestID", id).
			Int("day", solveCtx.Day).
			Stringer("part", solveCtx.Part).
			Msg("solve failed")
		return result, err
	}

	result.Status = models.StatusSolved
	result.Answer = answer
	e.logger.Info().
		Str("requestID", id).
		Str("answer", answer).
		Dur("duration", result.Duration).
		Msg("solve complete")

	return result, nil
}

// Normalize turns a wire request into a solve context, assigning an ID when
// the caller did not send one.
func Normalize(req models.SolveRequest) models.SolveContext {
	id := req.RequestID
	if id == "" {
		id = uuid.New().String()
	}

	return models.SolveContext{
		RequestID: id,
		Day:       req.Day,
		Part:      req.Part,
		Lines:     input.SplitLines(req.Input),
		CreatedAt: time.Now(),
	}
}
