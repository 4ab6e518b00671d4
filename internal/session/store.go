package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/saulo-duarte/quizapp-lambda/internal/aigen"
	"github.com/saulo-duarte/quizapp-lambda/internal/article"
	"github.com/saulo-duarte/quizapp-lambda/internal/auth"
	"github.com/saulo-duarte/quizapp-lambda/internal/quiz"
)

// ServiceStore adapts the article and quiz services to the session's Store and
// HistoryStore interfaces, fixed to one authenticated user.
type ServiceStore struct {
	articles article.ArticleService
	quizzes  quiz.QuizService
	claims   *auth.Claims
}

var (
	_ Store        = (*ServiceStore)(nil)
	_ HistoryStore = (*ServiceStore)(nil)
)

func NewServiceStore(articles article.ArticleService, quizzes quiz.QuizService, claims *auth.Claims) *ServiceStore {
	return &ServiceStore{
		articles: articles,
		quizzes:  quizzes,
		claims:   claims,
	}
}

func (s *ServiceStore) SaveArticle(ctx context.Context, title, content, summary string) (uuid.UUID, error) {
	a, err := s.articles.Create(ctx, s.claims, article.CreateArticleDTO{
		Title:   title,
		Content: content,
		Summary: summary,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return a.ID, nil
}

func (s *ServiceStore) ReplaceQuestions(ctx context.Context, articleID uuid.UUID, questions []aigen.Question) ([]uuid.UUID, error) {
	inputs := lo.Map(questions, func(q aigen.Question, _ int) quiz.QuestionInput {
		return quiz.QuestionInput{
			Question: q.Question,
			Options:  q.Options,
			Correct:  q.Correct,
		}
	})

	rows, err := s.quizzes.ReplaceQuestions(ctx, s.claims.SubjectID, articleID, inputs)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(row *quiz.Quiz, _ int) uuid.UUID { return row.ID }), nil
}

// RecordAttempt stores the raw score; the question count is derivable from the
// stored set and is not persisted with the attempt.
func (s *ServiceStore) RecordAttempt(ctx context.Context, quizID uuid.UUID, score, _ int) error {
	_, err := s.quizzes.RecordAttempt(ctx, s.claims.SubjectID, quizID, score)
	return err
}

func (s *ServiceStore) ListArticles(ctx context.Context) ([]*article.Article, error) {
	return s.articles.List(ctx, s.claims.SubjectID)
}

func (s *ServiceStore) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	return s.articles.Delete(ctx, s.claims.SubjectID, id)
}
