package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/models"
	"github.com/rs/zerolog"
)

type Handler struct {
	executor *executor.Executor
	catalog  []models.ChallengeInfo
	logger   *zerolog.Logger
}

func NewHandler(executor *executor.Executor, catalog []models.ChallengeInfo, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: executor,
		catalog:  catalog,
		logger:   logger,
	}
}

// POST /api/v1/solve
// Body: SolveRequest
// Returns: SolveResult
func (h *Handler) Solve(req *restful.Request, resp *restful.Response) {
	var solveRequest models.SolveRequest
	if err := req.ReadEntity(&solveRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if solveRequest.Part == 0 {
		middleware.HandleError(resp, fmt.Errorf("part is required"), http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("request_id", solveRequest.RequestID).
		Int("day", solveRequest.Day).
		Stringer("part", solveRequest.Part).
		Msg("Start solve")

	ctx := req.Request.Context()
	solveCtx := executor.Normalize(solveRequest)

	result, err := h.executor.Execute(ctx, solveCtx)
	if err != nil {
		resp.WriteHeaderAndEntity(statusFor(err), result)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/challenges
func (h *Handler) Challenges(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.catalog)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func statusFor(err error) int {
	switch {
	case challenge.IsUnknownDay(err):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnprocessableEntity
	}
}
