package facades

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/mealplan"
)

var (
	ErrDrafterDisabled = errors.New("llm api key is not configured")
	ErrEmptyCompletion = errors.New("llm returned no choices")
)

// OpenAIDrafter asks a chat-completion model for a plan document.
// It makes a single attempt per call.
type OpenAIDrafter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIDrafter builds a drafter. An empty baseURL keeps the provider default.
// A zero apiKey yields a drafter that always fails, sending callers to the fallback.
func NewOpenAIDrafter(apiKey, baseURL, model string, timeout time.Duration) *OpenAIDrafter {
	if apiKey == "" {
		return &OpenAIDrafter{model: model, timeout: timeout}
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIDrafter{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

// Draft returns the raw text of the first choice.
func (d *OpenAIDrafter) Draft(ctx context.Context, prompt string) (string, error) {
	if d.client == nil {
		return "", ErrDrafterDisabled
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: mealplan.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		logger.Log.Errorw("llm completion failed", "model", d.model, "elapsed", time.Since(start), "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	logger.Log.Infow("llm completion", "model", d.model, "elapsed", time.Since(start),
		"prompt_tokens", resp.Usage.PromptTokens, "completion_tokens", resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, nil
}
