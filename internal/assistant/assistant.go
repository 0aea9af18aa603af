// Package assistant generates marketing copy and restock recommendations
// through an OpenAI-compatible chat completion endpoint.
//
// The assistant is a value-producing boundary: every failure is absorbed
// here and mapped to a fixed fallback string, so callers never see an error
// and never mutate store state based on anything but plain text.
package assistant

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/talkincode/inventorypro/config"
	"go.uber.org/zap"
)

// Fallback texts returned across the boundary instead of errors.
const (
	MsgMissingKey     = "Description generation unavailable (Missing API Key)."
	MsgEmptyResult    = "No description generated."
	MsgGenerateFailed = "Failed to generate description."
	MsgAdviceDisabled = "AI analysis unavailable."
	MsgEmptyAdvice    = "No recommendation."
	MsgAdviceFailed   = "Could not analyze."
)

// Generator is the contract consumed by the presentation layer.
type Generator interface {
	// GenerateDescription returns sales copy for a product, or a fallback
	// string. It never returns an error.
	GenerateDescription(ctx context.Context, name, tags string) string

	// AnalyzeStockAction returns a short restocking recommendation, or a
	// fallback string.
	AnalyzeStockAction(ctx context.Context, name string, stock int, trend string) string
}

// OpenAIAssistant calls a remote chat completion API. A missing API key
// disables it entirely; no network call is ever attempted then.
type OpenAIAssistant struct {
	client  *openai.Client
	model   string
	enabled bool
}

func NewOpenAIAssistant(cfg config.AssistantConfig) *OpenAIAssistant {
	if strings.TrimSpace(cfg.APIKey) == "" {
		zap.L().Warn("assistant API key missing, description generation disabled")
		return &OpenAIAssistant{}
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientCfg.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &OpenAIAssistant{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		enabled: true,
	}
}

func (a *OpenAIAssistant) GenerateDescription(ctx context.Context, name, tags string) string {
	if !a.enabled {
		return MsgMissingKey
	}
	prompt := fmt.Sprintf(
		"Write a short, persuasive sales description (max 2 sentences) for a product named %q.", name)
	if tags != "" {
		prompt += fmt.Sprintf(" Keywords: %s.", tags)
	}
	prompt += " Keep it professional and suitable for an inventory sales app."

	text, err := a.complete(ctx, prompt)
	if err != nil {
		zap.L().Warn("description generation failed", zap.String("product", name), zap.Error(err))
		return MsgGenerateFailed
	}
	if text == "" {
		return MsgEmptyResult
	}
	return text
}

func (a *OpenAIAssistant) AnalyzeStockAction(ctx context.Context, name string, stock int, trend string) string {
	if !a.enabled {
		return MsgAdviceDisabled
	}
	prompt := fmt.Sprintf(
		"I have a product %q with %d units in stock. Recent sales trend is %s. "+
			"Give me a 10-word recommendation on restocking.", name, stock, trend)

	text, err := a.complete(ctx, prompt)
	if err != nil {
		zap.L().Warn("stock analysis failed", zap.String("product", name), zap.Error(err))
		return MsgAdviceFailed
	}
	if text == "" {
		return MsgEmptyAdvice
	}
	return text
}

func (a *OpenAIAssistant) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
