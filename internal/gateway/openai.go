package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient implements Client over the OpenAI chat completion API.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	logger      *zap.Logger
}

func NewOpenAIClient(apiKey, model string, maxTokens int, temperature float64, timeout time.Duration, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		timeout:     timeout,
		logger:      logger,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   c.maxTokens,
			Temperature: float32(c.temperature),
		},
	)
	if err != nil {
		c.logger.Warn("Model completion failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choice list", ErrUnavailable)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) ExtractStructured(ctx context.Context, prompt string, out any) error {
	response, err := c.Complete(ctx, prompt)
	if err != nil {
		return err
	}

	payload := StripFences(response)
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		c.logger.Warn("Failed to parse model payload",
			zap.Error(err),
			zap.String("response", response))
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return nil
}

// StripFences removes a wrapping markdown code fence, with or without a
// language tag, from a model reply. Replies without fences pass through.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
