package aoc2022day05

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

// Move relocates Count crates from stack Src to stack Dst.
type Move struct {
	Count int
	Src   string
	Dst   string
}

func (m Move) String() string {
	return fmt.Sprintf("move %d from %s to %s", m.Count, m.Src, m.Dst)
}

// ParseMoves parses every non-blank line as a move, keeping file order.
func ParseMoves(lines []string) ([]Move, error) {
	var moves []Move
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		m, err := ParseMove(line)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ParseMove parses "move <count> from <src> to <dst>".
func ParseMove(line string) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 6 || fields[0] != "move" || fields[2] != "from" || fields[4] != "to" {
		return Move{}, challenge.InvalidCommand(line, nil)
	}

	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, challenge.InvalidCommand(line, &challenge.ParseIntError{Token: fields[1], Err: err})
	}
	if count <= 0 {
		return Move{}, challenge.InvalidCommand(line, fmt.Errorf("crate count must be positive, got %d", count))
	}

	return Move{Count: count, Src: fields[3], Dst: fields[5]}, nil
}
