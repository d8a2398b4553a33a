package redis

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/aoc-agent/internal/challenge"
	"github.com/povarna/generative-ai-agents/aoc-agent/internal/models"
)

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		want    models.SolveRequest
		wantErr bool
	}{
		{
			name:   "valid payload",
			values: map[string]any{"payload": `{"request_id":"r1","day":5,"part":"one","input":"[A]\n 1 \n"}`},
			want:   models.SolveRequest{RequestID: "r1", Day: 5, Part: challenge.PartOne, Input: "[A]\n 1 \n"},
		},
		{
			name:   "numeric part",
			values: map[string]any{"payload": `{"day":6,"part":2,"input":"abc"}`},
			want:   models.SolveRequest{Day: 6, Part: challenge.PartTwo, Input: "abc"},
		},
		{name: "missing payload", values: map[string]any{"data": "x"}, wantErr: true},
		{name: "payload not a string", values: map[string]any{"payload": 42}, wantErr: true},
		{name: "malformed json", values: map[string]any{"payload": `{"day":`}, wantErr: true},
		{name: "missing part", values: map[string]any{"payload": `{"day":5}`}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeRequest(tt.values)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEncodeResult(t *testing.T) {
	result := models.SolveResult{
		ID:       "r1",
		Day:      5,
		Part:     challenge.PartTwo,
		Status:   models.StatusSolved,
		Answer:   "MCD",
		Duration: time.Millisecond,
	}

	values, err := encodeResult(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["request_id"] != "r1" || values["status"] != "solved" {
		t.Errorf("unexpected fields: %+v", values)
	}

	payload, ok := values["payload"].(string)
	if !ok {
		t.Fatalf("payload is not a string: %T", values["payload"])
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if decoded["answer"] != "MCD" || decoded["part"] != "two" {
		t.Errorf("unexpected payload: %s", payload)
	}
}
