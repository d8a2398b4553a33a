package aoc2022day05

import (
	"strings"
	"unicode"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

const slotWidth = 4

// ParseDiagram reads the crate drawing at the head of lines. The drawing is the
// first run of non-blank lines; its last line names the stacks and the lines
// above it hold crate rows. It returns the yard and the number of lines read.
func ParseDiagram(lines []string) (*Yard, int, error) {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := start
	for end < len(lines) && !isBlank(lines[end]) {
		end++
	}

	if end == start || strings.Contains(lines[end-1], "[") {
		return nil, end, challenge.MissingData("crate stack names")
	}

	yard, err := NewYard(strings.Fields(lines[end-1]))
	if err != nil {
		return nil, end, err
	}

	for _, row := range lines[start : end-1] {
		for idx, slot := range decodeRow(row) {
			if !slot.filled {
				continue
			}
			if idx >= len(yard.names) {
				return nil, end, challenge.MissingData("name for stack")
			}
			stack, ok := yard.stacks[yard.names[idx]]
			if !ok {
				return nil, end, challenge.MissingData("deque for stack")
			}
			// rows are read top-down, so each crate goes under the ones already placed
			stack.PushBack(slot.crate)
		}
	}

	return yard, end, nil
}

type slot struct {
	crate  Crate
	filled bool
}

// decodeRow splits a crate row into fixed-width slots. Anything other than
// "[X]" is an empty slot.
func decodeRow(row string) []slot {
	runes := []rune(strings.TrimRight(row, "\r"))
	slots := make([]slot, 0, len(runes)/slotWidth+1)

	for i := 0; i < len(runes); i += slotWidth {
		chunk := runes[i:min(i+3, len(runes))]
		if len(chunk) == 3 && chunk[0] == '[' && chunk[2] == ']' && !unicode.IsSpace(chunk[1]) {
			slots = append(slots, slot{crate: Crate(chunk[1]), filled: true})
			continue
		}
		slots = append(slots, slot{})
	}

	return slots
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
