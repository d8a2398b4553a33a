package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const payloadField = "payload"

type Consumer struct {
	client        *redis.Client
	requestStream string
	resultStream  string
	groupID       string
	consumerName  string
	executor      *executor.Executor
	logger        *zerolog.Logger
}

func NewConsumer(client *redis.Client, cfg *RedisStreamConfig, exec *executor.Executor, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:        client,
		requestStream: cfg.RequestStream,
		resultStream:  cfg.ResultStream,
		groupID:       cfg.Group,
		consumerName:  cfg.ConsumerName,
		executor:      exec,
		logger:        logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.requestStream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group %s: %w", c.groupID, err)
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.requestStream).
		Str("results", c.resultStream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.requestStream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// block timed out
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	req, err := decodeRequest(msg.Values)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, skip it
		return
	}

	if req.RequestID == "" {
		req.RequestID = msg.ID
	}

	// Puzzle failures are reported in the result, so the error is not needed here.
	result, _ := c.executor.Execute(ctx, executor.Normalize(req))

	if err := c.publish(ctx, result); err != nil {
		// left pending so another delivery can retry it
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish result")
		return
	}

	c.logger.Info().
		Str("id", msg.ID).
		Str("status", string(result.Status)).
		Str("answer", result.Answer).
		Msg("Solve complete")

	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, result models.SolveResult) error {
	values, err := encodeResult(result)
	if err != nil {
		return err
	}

	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		Values: values,
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.requestStream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}

func decodeRequest(values map[string]any) (models.SolveRequest, error) {
	payload, ok := values[payloadField].(string)
	if !ok {
		return models.SolveRequest{}, fmt.Errorf("missing %s field", payloadField)
	}

	var req models.SolveRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return models.SolveRequest{}, fmt.Errorf("failed to decode payload: %w", err)
	}
	if req.Part == 0 {
		return models.SolveRequest{}, fmt.Errorf("part is required")
	}

	return req, nil
}

func encodeResult(result models.SolveResult) (map[string]any, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result %s: %w", result.ID, err)
	}

	return map[string]any{
		payloadField: string(data),
		"request_id": result.ID,
		"status":     string(result.Status),
	}, nil
}
