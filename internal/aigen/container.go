package aigen

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type AIGenContainer struct {
	Service Service
	Handler *Handler
}

func NewAIGenContainer(ctx context.Context) *AIGenContainer {
	var provider Provider
	switch os.Getenv("AIGEN_PROVIDER") {
	case "gemini":
		p, err := NewGeminiProvider(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize Gemini provider")
		}
		provider = p
	default:
		provider = NewAnthropicProvider()
	}

	service := NewService(provider)
	handler := NewHandler(service)

	return &AIGenContainer{
		Service: service,
		Handler: handler,
	}
}
