// Package genai proposes workout routines with an OpenAI chat model.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/myrjola/ironlog/internal/plan"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	defaultSets   = 3
	defaultReps   = 10
	defaultWeight = 0
	defaultNotes  = "Focus on form."
)

// Client generates workout routines. It satisfies plan.Generator.
type Client struct {
	client openai.Client
	logger *slog.Logger
}

// NewClient creates a generator backed by the OpenAI API.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		logger: logger,
	}
}

// GenerateWorkout asks the model for a day's routine around the given
// training focus.
func (c *Client) GenerateWorkout(ctx context.Context, focus string) ([]plan.GeneratedExercise, error) {
	prompt := fmt.Sprintf(
		`Create a workout routine focusing on %s for an intermediate level lifter. Generate 4-6 exercises.
Respond with a JSON array only, no prose. Each element must have the keys
"name" (string), "muscleGroup" (string), "sets" (number), "reps" (number per set),
"weight" (number in kg, 0 for bodyweight) and "notes" (string).`, focus)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}

	c.logger.DebugContext(ctx, "requesting workout generation", "focus", focus)

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	exercises, err := parseWorkout(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "generated workout",
		"focus", focus,
		"exercise_count", len(exercises),
		"total_tokens", completion.Usage.TotalTokens)

	return exercises, nil
}

// generatedItem is the tolerant wire form of one proposed exercise. Models
// sometimes return numbers as strings, so the numeric fields decode through
// raw JSON.
type generatedItem struct {
	Name        string          `json:"name"`
	MuscleGroup string          `json:"muscleGroup"`
	Sets        json.RawMessage `json:"sets"`
	Reps        json.RawMessage `json:"reps"`
	Weight      json.RawMessage `json:"weight"`
	Notes       string          `json:"notes"`
}

// parseWorkout decodes the model's reply into exercise proposals, filling in
// defaults for anything the model left out.
func parseWorkout(content string) ([]plan.GeneratedExercise, error) {
	payload := extractJSONArray(content)
	if payload == "" {
		return nil, fmt.Errorf("no JSON array in model reply")
	}

	var items []generatedItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("decode model reply: %w", err)
	}

	exercises := make([]plan.GeneratedExercise, 0, len(items))
	for _, item := range items {
		sets := decodeCount(item.Sets, defaultSets)
		reps := decodeNumber(item.Reps, defaultReps)
		if reps <= 0 {
			reps = defaultReps
		}
		weight := decodeNumber(item.Weight, defaultWeight)
		if weight < 0 {
			weight = defaultWeight
		}

		muscleGroup := item.MuscleGroup
		if muscleGroup == "" {
			muscleGroup = "Full Body"
		}
		notes := item.Notes
		if notes == "" {
			notes = defaultNotes
		}

		exercises = append(exercises, plan.GeneratedExercise{
			Name:        item.Name,
			MuscleGroup: muscleGroup,
			Sets:        sets,
			Reps:        repeatValue(formatNumber(reps), sets),
			Weight:      repeatValue(formatNumber(weight), sets),
			Notes:       notes,
		})
	}
	return exercises, nil
}

// extractJSONArray strips code fences and surrounding prose from the reply.
func extractJSONArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return ""
	}
	return content[start : end+1]
}

func decodeCount(raw json.RawMessage, fallback int) int {
	n := decodeNumber(raw, float64(fallback))
	if n < 1 {
		return fallback
	}
	return int(n)
}

func decodeNumber(raw json.RawMessage, fallback float64) float64 {
	if len(raw) == 0 {
		return fallback
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fallback
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return n
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func repeatValue(value string, count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = value
	}
	return out
}
