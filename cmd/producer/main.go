package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/input"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/models"
	red "github.com/povarna/generative-ai-agents/aoc-agent/internal/redis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	data := flag.String("d", "", "Inline JSON SolveRequest")
	inputPath := flag.String("input", "", "Read the request input from this file, overriding the JSON input field")
	stream := flag.String("stream", "aoc-requests", "Stream name")
	flag.Parse()

	if *data == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>' [-input path]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(*data, *inputPath, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(data, inputPath, stream string) error {
	_ = godotenv.Load()

	var req models.SolveRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	if req.Part == 0 {
		return fmt.Errorf("invalid request: part is required")
	}

	if inputPath != "" {
		lines, err := input.ReadFile(inputPath)
		if err != nil {
			return err
		}
		req.Input = strings.Join(lines, "\n")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"payload": string(payload)},
	}).Result()
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("request_id", req.RequestID).Int("day", req.Day).Msg("Published successfully!")
	return nil
}
