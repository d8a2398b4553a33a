// Package aoc2022day01 totals the calories carried by each elf.
package aoc2022day01

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

type Challenge struct {
	lines []string
}

func New(lines []string) *Challenge {
	return &Challenge{lines: lines}
}

func (c *Challenge) Run(part challenge.Part) (string, error) {
	var top int

	switch part {
	case challenge.PartOne:
		top = 1
	case challenge.PartTwo:
		top = 3
	default:
		return "", fmt.Errorf("unsupported part %s", part)
	}

	totals, err := getCalories(c.lines)
	if err != nil {
		return "", err
	}
	if len(totals) < top {
		return "", challenge.MissingData(fmt.Sprintf("calories of %d elves, got %d", top, len(totals)))
	}

	slices.SortFunc(totals, func(a int, b int) int {
		return b - a
	})

	sum := 0
	for _, total := range totals[:top] {
		sum += total
	}

	return strconv.Itoa(sum), nil
}

// getCalories sums each blank-line separated group.
func getCalories(lines []string) ([]int, error) {
	var acc []int
	total, inGroup := 0, false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if inGroup {
				acc = append(acc, total)
			}
			total, inGroup = 0, false
			continue
		}

		calories, err := strconv.Atoi(line)
		if err != nil {
			return nil, challenge.InvalidInput(line, "expected a calorie count")
		}
		total += calories
		inGroup = true
	}

	if inGroup {
		acc = append(acc, total)
	}
	return acc, nil
}
