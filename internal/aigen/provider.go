package aigen

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/saulo-duarte/quizapp-lambda/internal/config"
)

const maxCompletionTokens = 1000

// ErrGeneration marks any failure of the external text-generation endpoint:
// network errors, empty responses and unparseable output. Callers treat it as
// non-fatal and retry on user action only.
var ErrGeneration = errors.New("text generation failed")

// Provider sends a single user-role prompt to a completion endpoint and returns
// the model's text. No retries are performed here; retry policy belongs to the
// caller.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type anthropicProvider struct {
	client *anthropic.Client
}

func NewAnthropicProvider() Provider {
	client := anthropic.NewClient()
	return &anthropicProvider{client: &client}
}

func (p *anthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude4Sonnet20250514,
		MaxTokens: maxCompletionTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.WithError(err).Error("Anthropic completion request failed")
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	// The first text-typed content block is the completion; anything else
	// (tool use and the like) is ignored.
	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			return text.Text, nil
		}
	}

	log.Warn("Anthropic response contained no text block")
	return "", fmt.Errorf("%w: response contained no text block", ErrGeneration)
}
