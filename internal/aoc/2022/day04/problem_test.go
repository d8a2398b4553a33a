package aoc2022day04

import (
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

var exampleInput = []string{
	"2-4,6-8",
	"2-3,4-5",
	"5-7,7-9",
	"2-8,3-7",
	"6-6,4-6",
	"2-6,4-8",
	"",
}

func TestChallenge_Example(t *testing.T) {
	c := New(exampleInput)

	tests := []struct {
		part challenge.Part
		want string
	}{
		{challenge.PartOne, "2"},
		{challenge.PartTwo, "4"},
	}

	for _, tt := range tests {
		t.Run(tt.part.String(), func(t *testing.T) {
			got, err := c.Run(tt.part)
			if err != nil {
				t.Fatalf("Run(%s) failed: %v", tt.part, err)
			}
			if got != tt.want {
				t.Errorf("Run(%s) = %s, want %s", tt.part, got, tt.want)
			}
		})
	}
}

func TestChallenge_MalformedLine(t *testing.T) {
	for _, line := range []string{"2-4", "a-b,c-d", "2-4,6-8x", "5-2,1-1"} {
		t.Run(line, func(t *testing.T) {
			_, err := New([]string{line}).Run(challenge.PartOne)

			var invalid *challenge.InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
		})
	}
}
