package aigen

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/quizapp-lambda/internal/config"
	"google.golang.org/genai"
)

type geminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider is the alternate completion backend, selected with
// AIGEN_PROVIDER=gemini.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		"gemini-2.0-flash",
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Gemini completion request failed")
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	raw := result.Text()
	if raw == "" {
		log.Warn("Gemini response contained no text")
		return "", fmt.Errorf("%w: empty model response", ErrGeneration)
	}
	return raw, nil
}
