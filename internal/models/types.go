package models

import (
	"time"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

type Status string

const (
	StatusSolved Status = "solved"
	StatusFailed Status = "failed"
)

// Input message

type SolveRequest struct {
	RequestID string         `json:"request_id,omitempty"`
	Day       int            `json:"day"`
	Part      challenge.Part `json:"part"`
	Input     string         `json:"input"`
}

// Normalized internal object
type SolveContext struct {
	RequestID string         `json:"request_id"`
	Day       int            `json:"day"`
	Part      challenge.Part `json:"part"`
	Lines     []string       `json:"lines"`
	CreatedAt time.Time      `json:"created_at"`
}

type SolveResult struct {
	ID       string         `json:"id"`
	Day      int            `json:"day"`
	Part     challenge.Part `json:"part"`
	Status   Status         `json:"status"`
	Answer   string         `json:"answer,omitempty"`
	Error    string         `json:"error,omitempty"`
	Duration time.Duration  `json:"duration_ns"`
}

type ChallengeInfo struct {
	Day         int    `json:"day"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}
