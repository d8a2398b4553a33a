package solver

import (
	"slices"

	day01 "github.com/povarna/generative-ai-agents/aoc-agent/internal/aoc/2022/day01"
	day03 "github.com/povarna/generative-ai-agents/aoc-agent/internal/aoc/2022/day03"
	day04 "github.com/povarna/generative-ai-agents/aoc-agent/internal/aoc/2022/day04"
	day05 "github.com/povarna/generative-ai-agents/aoc-agent/internal/aoc/2022/day05"
	day06 "github.com/povarna/generative-ai-agents/aoc-agent/internal/aoc/2022/day06"
	day07 "github.com/povarna/generative-ai-agents/aoc-agent/internal/aoc/2022/day07"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
)

const (
	FirstDay = 1
	LastDay  = 25
)

// Constructor binds a puzzle implementation to its input lines.
type Constructor func(lines []string) challenge.Challenge

// Solver dispatches puzzle inputs to the implementation registered for a day.
type Solver struct {
	challenges map[int]Constructor
}

// New returns a solver with every implemented day registered.
func New() *Solver {
	s := &Solver{challenges: make(map[int]Constructor)}
	s.Register(1, func(lines []string) challenge.Challenge { return day01.New(lines) })
	s.Register(3, func(lines []string) challenge.Challenge { return day03.New(lines) })
	s.Register(4, func(lines []string) challenge.Challenge { return day04.New(lines) })
	s.Register(5, func(lines []string) challenge.Challenge { return day05.New(lines) })
	s.Register(6, func(lines []string) challenge.Challenge { return day06.New(lines) })
	s.Register(7, func(lines []string) challenge.Challenge { return day07.New(lines) })
	return s
}

func (s *Solver) Register(day int, constructor Constructor) {
	s.challenges[day] = constructor
}

// Get builds the challenge for day.
func (s *Solver) Get(day int, lines []string) (challenge.Challenge, error) {
	if day < FirstDay || day > LastDay {
		return nil, &challenge.InvalidDayError{Day: day}
	}

	constructor, exist := s.challenges[day]
	if !exist {
		return nil, &challenge.NotImplementedError{Day: day}
	}

	return constructor(lines), nil
}

func (s *Solver) Solve(day int, part challenge.Part, lines []string) (string, error) {
	c, err := s.Get(day, lines)
	if err != nil {
		return "", err
	}
	return c.Run(part)
}

// Days lists the registered days in ascending order.
func (s *Solver) Days() []int {
	days := make([]int, 0, len(s.challenges))
	for day := range s.challenges {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}
