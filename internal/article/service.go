package article

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/auth"
	"github.com/saulo-duarte/quizapp-lambda/internal/config"
	"github.com/saulo-duarte/quizapp-lambda/internal/quiz"
	"github.com/saulo-duarte/quizapp-lambda/internal/user"
	"github.com/sirupsen/logrus"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrUserNotFound    = user.ErrUserNotFound
	ErrMissingFields   = errors.New("title, content, and summary are required")
)

type ArticleService interface {
	List(ctx context.Context, subjectID string) ([]*Article, error)
	// Create provisions the user record on first authenticated write, then
	// persists the article. Rejected before any mutation when a field is empty.
	Create(ctx context.Context, claims *auth.Claims, dto CreateArticleDTO) (*Article, error)
	Get(ctx context.Context, subjectID string, id uuid.UUID) (*Article, error)
	Update(ctx context.Context, subjectID string, id uuid.UUID, dto UpdateArticleDTO) (*Article, error)
	Delete(ctx context.Context, subjectID string, id uuid.UUID) error
}

type articleService struct {
	repo        ArticleRepository
	userService user.UserService
}

func NewService(repo ArticleRepository, userService user.UserService) ArticleService {
	return &articleService{
		repo:        repo,
		userService: userService,
	}
}

func (s *articleService) List(ctx context.Context, subjectID string) ([]*Article, error) {
	log := config.WithContext(ctx)

	u, err := s.userService.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	articles, err := s.repo.ListByUser(u.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list articles")
		return nil, err
	}
	return articles, nil
}

func (s *articleService) Create(ctx context.Context, claims *auth.Claims, dto CreateArticleDTO) (*Article, error) {
	log := config.WithContext(ctx)

	if dto.Title == "" || dto.Content == "" || dto.Summary == "" {
		return nil, ErrMissingFields
	}

	u, err := s.userService.FindOrCreateFromClaims(ctx, claims)
	if err != nil {
		log.WithError(err).Error("Failed to resolve user for article creation")
		return nil, err
	}

	a := &Article{
		ID:      uuid.New(),
		UserID:  u.ID,
		Title:   dto.Title,
		Content: dto.Content,
		Summary: dto.Summary,
		Quizzes: []quiz.Quiz{},
	}
	if err := s.repo.Create(a); err != nil {
		log.WithError(err).Error("Failed to create article")
		return nil, err
	}

	log.WithField("article_id", a.ID).Info("Article created")
	return a, nil
}

func (s *articleService) Get(ctx context.Context, subjectID string, id uuid.UUID) (*Article, error) {
	log := config.WithContext(ctx)

	u, err := s.userService.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.FindByIDAndUser(id, u.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithFields(logrus.Fields{
				"article_id": id,
				"user_id":    u.ID,
			}).Warn("Article not found or does not belong to user")
			return nil, ErrArticleNotFound
		}
		log.WithError(err).Error("Failed to find article")
		return nil, err
	}
	return a, nil
}

func (s *articleService) Update(ctx context.Context, subjectID string, id uuid.UUID, dto UpdateArticleDTO) (*Article, error) {
	log := config.WithContext(ctx)

	a, err := s.Get(ctx, subjectID, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil && *dto.Title != "" {
		a.Title = *dto.Title
	}
	if dto.Content != nil && *dto.Content != "" {
		a.Content = *dto.Content
	}
	if dto.Summary != nil && *dto.Summary != "" {
		a.Summary = *dto.Summary
	}

	if err := s.repo.Update(a); err != nil {
		log.WithError(err).Error("Failed to update article")
		return nil, err
	}

	log.WithField("article_id", a.ID).Info("Article updated")
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, subjectID string, id uuid.UUID) error {
	log := config.WithContext(ctx)

	u, err := s.userService.FindBySubject(ctx, subjectID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id, u.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WithFields(logrus.Fields{
				"article_id": id,
				"user_id":    u.ID,
			}).Warn("Article not found or does not belong to user for deletion")
			return ErrArticleNotFound
		}
		log.WithError(err).Error("Failed to delete article")
		return err
	}

	log.WithField("article_id", id).Info("Article deleted")
	return nil
}
