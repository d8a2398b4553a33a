// Package aoc2022day03 sums the priorities of misplaced rucksack items.
package aoc2022day03

import (
	"fmt"
	"strconv"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

type Challenge struct {
	lines []string
}

func New(lines []string) *Challenge {
	return &Challenge{lines: lines}
}

func (c *Challenge) Run(part challenge.Part) (string, error) {
	var (
		total int
		err   error
	)

	switch part {
	case challenge.PartOne:
		total, err = part1(c.lines)
	case challenge.PartTwo:
		total, err = part2(c.lines)
	default:
		return "", fmt.Errorf("unsupported part %s", part)
	}
	if err != nil {
		return "", err
	}

	return strconv.Itoa(total), nil
}

// part1 finds the item shared by both compartments of each rucksack.
func part1(lines []string) (int, error) {
	total := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		half := len(line) / 2
		left, err := itemSet(line[:half], line)
		if err != nil {
			return 0, err
		}
		right, err := itemSet(line[half:], line)
		if err != nil {
			return 0, err
		}
		total += sumPriorities(left & right)
	}
	return total, nil
}

// part2 finds the badge shared by each group of three elves. A trailing group
// with fewer than three rucksacks is ignored.
func part2(lines []string) (int, error) {
	var sacks []string
	for _, line := range lines {
		if line != "" {
			sacks = append(sacks, line)
		}
	}

	total := 0
	for i := 0; i+3 <= len(sacks); i += 3 {
		common := ^uint64(0)
		for _, sack := range sacks[i : i+3] {
			set, err := itemSet(sack, sack)
			if err != nil {
				return 0, err
			}
			common &= set
		}
		total += sumPriorities(common)
	}
	return total, nil
}

// itemSet returns a bitset where bit n is set when an item of priority n is present.
func itemSet(items, line string) (uint64, error) {
	var set uint64
	for _, item := range items {
		p := priority(item)
		if p == 0 {
			return 0, challenge.InvalidInput(line, "invalid item "+strconv.QuoteRune(item))
		}
		set |= 1 << p
	}
	return set, nil
}

func sumPriorities(set uint64) int {
	total := 0
	for p := 1; p <= 52; p++ {
		if set&(1<<p) != 0 {
			total += p
		}
	}
	return total
}

func priority(item rune) int {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27
	default:
		return 0
	}
}
