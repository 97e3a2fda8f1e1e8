package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"

	"boardpanel/internal/config"
	"boardpanel/internal/models"
	"boardpanel/internal/prompts"
)

// Client calls the Groq chat-completion endpoint through its
// OpenAI-compatible API, one call per advisor stage.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// StageResult is the raw outcome of one stage's completion call. Parsed is
// set when the returned content already decodes as the expected structure;
// otherwise downstream extraction works from Content alone.
type StageResult struct {
	Stage      string
	Content    string
	Parsed     *models.AgentStrengthOutput
	Model      string
	TokensUsed int
}

// Payload exposes the pre-parsed structure for the extraction cascade.
func (r *StageResult) Payload() any {
	if r == nil || r.Parsed == nil {
		return nil
	}
	return r.Parsed
}

// Text exposes the raw completion text for the extraction cascade.
func (r *StageResult) Text() string {
	if r == nil {
		return ""
	}
	return r.Content
}

func NewClient(cfg config.Config) *Client {
	apiConfig := openai.DefaultConfig(cfg.GroqAPIKey)
	if cfg.GroqBaseURL != "" {
		apiConfig.BaseURL = cfg.GroqBaseURL
	}
	return &Client{
		api:         openai.NewClientWithConfig(apiConfig),
		model:       cfg.GroqModel,
		temperature: float32(cfg.LLMTemperature),
		maxTokens:   cfg.LLMMaxTokens,
	}
}

// CompleteStage runs one advisor stage's completion call, requesting strict
// JSON output. The content comes back as-is; strict decoding is attempted
// opportunistically and failure to decode is not an error here.
func (c *Client) CompleteStage(ctx context.Context, p prompts.StagePrompt) (*StageResult, error) {
	start := time.Now()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("completion API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("completion returned no choices")
	}

	content := resp.Choices[0].Message.Content
	result := &StageResult{
		Stage:      p.Stage,
		Content:    content,
		Model:      resp.Model,
		TokensUsed: resp.Usage.TotalTokens,
	}

	var parsed models.AgentStrengthOutput
	if err := json.Unmarshal([]byte(content), &parsed); err == nil && len(parsed.Strengths) > 0 {
		result.Parsed = &parsed
	}

	slog.Info("stage completion received",
		"stage", p.Stage,
		"model", resp.Model,
		"tokens_used", resp.Usage.TotalTokens,
		"structured", result.Parsed != nil,
		"duration_ms", time.Since(start).Milliseconds())

	return result, nil
}
