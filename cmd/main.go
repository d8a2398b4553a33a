package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/config"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/input"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/setup"
	applog "github.com/povarna/generative-ai-agents/aoc-agent/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/solver"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	day := flag.Int("day", 0, "Puzzle day (1-25)")
	part := flag.String("part", "1", "Puzzle part: 1 or 2")
	inputPath := flag.String("input", "", "Input file, '-' for stdin (default: from challenges config)")
	all := flag.Bool("all", false, "Solve both parts of every enabled day in the challenges config")
	flag.Parse()

	// Load env
	_ = godotenv.Load()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cfg := setup.LoadConfig()
	log.Logger = applog.New(cfg.LogLevel, cfg.LogFormat)

	if !*all && *day == 0 {
		fmt.Fprintln(os.Stderr, "Usage: aoc -day N [-part 1|2] [-input path] | aoc -all")
		flag.PrintDefaults()
		os.Exit(2)
	}

	s := solver.New()

	var err error
	if *all {
		err = runAll(s)
	} else {
		err = runOne(s, *day, *part, *inputPath)
	}
	if err != nil {
		log.Error().Err(err).Msg("aoc failed")
		os.Exit(1)
	}
}

func runOne(s *solver.Solver, day int, partFlag string, inputPath string) error {
	part, err := challenge.ParsePart(partFlag)
	if err != nil {
		return err
	}

	if inputPath == "" {
		challenges, err := config.LoadChallengesConfig()
		if err != nil {
			return fmt.Errorf("no -input given: %w", err)
		}
		path, ok := challenges.InputPath(day)
		if !ok {
			return fmt.Errorf("no -input given and day %d is not configured", day)
		}
		inputPath = path
	}

	lines, err := input.ReadFile(inputPath)
	if err != nil {
		return err
	}

	answer, err := s.Solve(day, part, lines)
	if err != nil {
		return fmt.Errorf("day %d part %s: %w", day, part, err)
	}

	fmt.Println(answer)
	return nil
}

type run struct {
	day    int
	part   challenge.Part
	answer string
	err    error
}

// runAll solves both parts of every enabled day, one goroutine per run, and
// prints the answers in config order.
func runAll(s *solver.Solver) error {
	challenges, err := config.LoadChallengesConfig()
	if err != nil {
		return err
	}

	var runs []*run
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, day := range challenges.Enabled() {
		path, _ := challenges.InputPath(day.Day)
		lines, err := input.ReadFile(path)
		if err != nil {
			runs = append(runs, &run{day: day.Day, err: err})
			continue
		}

		for _, part := range []challenge.Part{challenge.PartOne, challenge.PartTwo} {
			r := &run{day: day.Day, part: part}
			runs = append(runs, r)
			g.Go(func() error {
				r.answer, r.err = s.Solve(r.day, r.part, lines)
				return nil
			})
		}
	}
	_ = g.Wait()

	failed := 0
	for _, r := range runs {
		if r.err != nil {
			log.Error().Err(r.err).Int("day", r.day).Stringer("part", r.part).Msg("Solve failed")
			failed++
			continue
		}
		fmt.Printf("day %02d part %s: %s\n", r.day, r.part, r.answer)
	}

	if failed > 0 {
		return fmt.Errorf("%d puzzle runs failed", failed)
	}
	return nil
}
