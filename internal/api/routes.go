package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/challenges").
			To(handler.Challenges).
			Doc("List the implemented puzzles").
			Metadata(restfulspec.KeyOpenAPITags, []string{"challenges"}).
			Writes([]models.ChallengeInfo{}).
			Returns(200, "OK", []models.ChallengeInfo{}))

	ws.
		Route(ws.POST("/solve").
			To(handler.Solve).
			Doc("Solve one part of a puzzle").
			Metadata(restfulspec.KeyOpenAPITags, []string{"challenges"}).
			Reads(models.SolveRequest{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Day Not Found", models.SolveResult{}).
			Returns(422, "Invalid Puzzle Input", models.SolveResult{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
