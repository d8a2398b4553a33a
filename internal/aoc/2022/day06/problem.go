// Package aoc2022day06 locates start-of-packet and start-of-message markers.
package aoc2022day06

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

const (
	packetMarkerSize  = 4
	messageMarkerSize = 14
)

type Challenge struct {
	lines []string
}

func New(lines []string) *Challenge {
	return &Challenge{lines: lines}
}

func (c *Challenge) Run(part challenge.Part) (string, error) {
	var size int
	switch part {
	case challenge.PartOne:
		size = packetMarkerSize
	case challenge.PartTwo:
		size = messageMarkerSize
	default:
		return "", fmt.Errorf("unsupported part %s", part)
	}

	signal, err := c.signal()
	if err != nil {
		return "", err
	}

	end, ok := findMarker(signal, size)
	if !ok {
		return "", challenge.ErrNoSolution
	}

	return strconv.Itoa(end), nil
}

func (c *Challenge) signal() (string, error) {
	var signal []string
	for _, line := range c.lines {
		if line = strings.TrimSpace(line); line != "" {
			signal = append(signal, line)
		}
	}

	switch len(signal) {
	case 0:
		return "", challenge.MissingData("input data")
	case 1:
		return signal[0], nil
	default:
		return "", challenge.ErrTooManyLines
	}
}

// findMarker returns the number of characters read when the last size
// characters are first all distinct.
func findMarker(signal string, size int) (int, bool) {
	var seen [256]int
	duplicates := 0

	for i := 0; i < len(signal); i++ {
		seen[signal[i]]++
		if seen[signal[i]] == 2 {
			duplicates++
		}

		if i >= size {
			out := signal[i-size]
			if seen[out] == 2 {
				duplicates--
			}
			seen[out]--
		}

		if i >= size-1 && duplicates == 0 {
			return i + 1, true
		}
	}

	return 0, false
}
