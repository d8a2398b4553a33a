// Package aoc2022day04 counts overlapping cleanup section assignments.
package aoc2022day04

import (
	"fmt"
	"strconv"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

type assignment struct {
	from, to int
}

func (a assignment) contains(other assignment) bool {
	return a.from <= other.from && other.to <= a.to
}

func (a assignment) overlaps(other assignment) bool {
	return a.from <= other.to && other.from <= a.to
}

type Challenge struct {
	lines []string
}

func New(lines []string) *Challenge {
	return &Challenge{lines: lines}
}

func (c *Challenge) Run(part challenge.Part) (string, error) {
	var match func(left, right assignment) bool

	switch part {
	case challenge.PartOne:
		match = func(left, right assignment) bool {
			return left.contains(right) || right.contains(left)
		}
	case challenge.PartTwo:
		match = assignment.overlaps
	default:
		return "", fmt.Errorf("unsupported part %s", part)
	}

	total := 0
	for _, line := range c.lines {
		if line == "" {
			continue
		}
		left, right, err := parsePair(line)
		if err != nil {
			return "", err
		}
		if match(left, right) {
			total += 1
		}
	}

	return strconv.Itoa(total), nil
}

func parsePair(line string) (assignment, assignment, error) {
	var left, right assignment
	var rest string

	n, _ := fmt.Sscanf(line, "%d-%d,%d-%d%s", &left.from, &left.to, &right.from, &right.to, &rest)
	if n != 4 {
		return left, right, challenge.InvalidInput(line, "expected <a>-<b>,<c>-<d>")
	}
	if left.from > left.to || right.from > right.to {
		return left, right, challenge.InvalidInput(line, "range start after range end")
	}

	return left, right, nil
}
