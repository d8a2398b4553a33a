// Package aoc2022day05 rearranges stacks of crates following a list of moves.
package aoc2022day05

import (
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

type Challenge struct {
	lines []string
}

func New(lines []string) *Challenge {
	return &Challenge{lines: lines}
}

// Run parses the input from scratch, applies every move in order and returns
// the top crate of each stack. Part one moves crates one at a time, part two
// moves them as a block.
func (c *Challenge) Run(part challenge.Part) (string, error) {
	mode, err := ModeFor(part)
	if err != nil {
		return "", err
	}

	yard, consumed, err := ParseDiagram(c.lines)
	if err != nil {
		return "", err
	}

	moves, err := ParseMoves(c.lines[consumed:])
	if err != nil {
		return "", err
	}

	for _, m := range moves {
		if err := yard.Apply(m, mode); err != nil {
			return "", err
		}
	}

	return yard.Tops()
}
