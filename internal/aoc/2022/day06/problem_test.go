package aoc2022day06

import (
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

func TestChallenge_Example(t *testing.T) {
	tests := []struct {
		signal  string
		packet  string
		message string
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", "7", "19"},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", "5", "23"},
		{"nppdvjthqldpwncqszvftbrmjlhg", "6", "23"},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", "10", "29"},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", "11", "26"},
	}

	for _, tt := range tests {
		t.Run(tt.signal, func(t *testing.T) {
			c := New([]string{tt.signal})

			got, err := c.Run(challenge.PartOne)
			if err != nil || got != tt.packet {
				t.Errorf("part one = %q, %v, want %q", got, err, tt.packet)
			}

			got, err = c.Run(challenge.PartTwo)
			if err != nil || got != tt.message {
				t.Errorf("part two = %q, %v, want %q", got, err, tt.message)
			}
		})
	}
}

func TestChallenge_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		check func(error) bool
	}{
		{
			name:  "no signal",
			lines: []string{""},
			check: func(err error) bool {
				var missing *challenge.MissingDataError
				return errors.As(err, &missing)
			},
		},
		{
			name:  "two signals",
			lines: []string{"abcd", "efgh"},
			check: func(err error) bool { return errors.Is(err, challenge.ErrTooManyLines) },
		},
		{
			name:  "no marker",
			lines: []string{"aaaaaaaaaa"},
			check: func(err error) bool { return errors.Is(err, challenge.ErrNoSolution) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.lines).Run(challenge.PartOne)
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
