package aigen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizapp-lambda/internal/config"
)

type Service interface {
	// Summarize produces a 3-4 sentence summary of the article.
	Summarize(ctx context.Context, title, content string) (string, error)
	// GenerateQuestions produces the multiple-choice question set. A response
	// without a "questions" field parses to an empty set rather than failing.
	GenerateQuestions(ctx context.Context, content string) ([]Question, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) Summarize(ctx context.Context, title, content string) (string, error) {
	summary, err := s.provider.Complete(ctx, BuildSummaryPrompt(title, content))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary), nil
}

func (s *service) GenerateQuestions(ctx context.Context, content string) ([]Question, error) {
	log := config.WithContext(ctx)

	raw, err := s.provider.Complete(ctx, BuildQuestionsPrompt(content))
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		log.WithError(err).Errorf("Failed to decode generated questions. Cleaned content:\n%s", stripFences(raw))
		return nil, err
	}

	log.Infof("Generated %d questions", len(questions))
	return questions, nil
}

// ParseQuestions decodes the model's JSON payload, tolerating markdown code
// fences around it. A payload missing the "questions" field yields an empty
// set; anything that is not JSON is a generation failure.
func ParseQuestions(raw string) ([]Question, error) {
	clean := stripFences(raw)

	var payload struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrGeneration, err)
	}

	if payload.Questions == nil {
		return []Question{}, nil
	}
	return payload.Questions, nil
}

func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	return strings.TrimSpace(clean)
}
