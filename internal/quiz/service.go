package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/saulo-duarte/quizapp-lambda/internal/config"
	"github.com/saulo-duarte/quizapp-lambda/internal/user"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUserNotFound    = user.ErrUserNotFound
	ErrArticleNotFound = errors.New("article not found")
	ErrQuizNotFound    = errors.New("quiz not found")
)

// ArticleGuard is the slice of the article repository this service needs for
// ownership checks. Declared here to keep the article package one-directional.
type ArticleGuard interface {
	ExistsByIDAndUser(id, userID uuid.UUID) (bool, error)
}

type QuizService interface {
	// ReplaceQuestions swaps the article's entire question set for the supplied
	// one. Prior rows are discarded; the operation is atomic.
	ReplaceQuestions(ctx context.Context, subjectID string, articleID uuid.UUID, questions []QuestionInput) ([]*Quiz, error)
	// RecordAttempt appends an attempt for the anchor quiz row and keeps the
	// cached best score for the (user, quiz) pair monotonically non-decreasing.
	RecordAttempt(ctx context.Context, subjectID string, quizID uuid.UUID, score int) (*QuizAttempt, error)
	ListAttempts(ctx context.Context, subjectID string, articleID uuid.UUID) ([]*QuizAttempt, error)
}

type quizService struct {
	repo     QuizRepository
	userRepo user.UserRepository
	articles ArticleGuard
}

func NewService(repo QuizRepository, userRepo user.UserRepository, articles ArticleGuard) QuizService {
	return &quizService{
		repo:     repo,
		userRepo: userRepo,
		articles: articles,
	}
}

func (s *quizService) ReplaceQuestions(ctx context.Context, subjectID string, articleID uuid.UUID, questions []QuestionInput) ([]*Quiz, error) {
	log := config.WithContext(ctx)

	u, err := s.userRepo.FindBySubject(subjectID)
	if err != nil {
		return nil, err
	}

	owned, err := s.articles.ExistsByIDAndUser(articleID, u.ID)
	if err != nil {
		log.WithError(err).Error("Failed to check article ownership")
		return nil, err
	}
	if !owned {
		log.WithFields(logrus.Fields{
			"article_id": articleID,
			"user_id":    u.ID,
		}).Warn("Article not found or does not belong to user")
		return nil, ErrArticleNotFound
	}

	rows := lo.Map(questions, func(q QuestionInput, _ int) *Quiz {
		options, _ := json.Marshal(q.Options)
		return &Quiz{
			ID:        uuid.New(),
			ArticleID: articleID,
			Question:  q.Question,
			Options:   datatypes.JSON(options),
			Answer:    strconv.Itoa(q.Correct),
		}
	})

	if err := s.repo.ReplaceForArticle(articleID, rows); err != nil {
		log.WithError(err).Error("Failed to replace question set")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"article_id": articleID,
		"questions":  len(rows),
	}).Info("Question set replaced")
	return rows, nil
}

func (s *quizService) RecordAttempt(ctx context.Context, subjectID string, quizID uuid.UUID, score int) (*QuizAttempt, error) {
	log := config.WithContext(ctx)

	u, err := s.userRepo.FindBySubject(subjectID)
	if err != nil {
		return nil, err
	}

	anchor, err := s.repo.GetByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to look up quiz anchor")
		return nil, err
	}
	if anchor == nil {
		return nil, ErrQuizNotFound
	}

	attempt := &QuizAttempt{
		ID:         uuid.New(),
		UserID:     u.ID,
		QuizID:     anchor.ID,
		TotalScore: score,
	}
	if err := s.repo.RecordAttempt(attempt); err != nil {
		log.WithError(err).Error("Failed to record quiz attempt")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"quiz_id": anchor.ID,
		"score":   score,
	}).Info("Quiz attempt recorded")
	return attempt, nil
}

func (s *quizService) ListAttempts(ctx context.Context, subjectID string, articleID uuid.UUID) ([]*QuizAttempt, error) {
	log := config.WithContext(ctx)

	u, err := s.userRepo.FindBySubject(subjectID)
	if err != nil {
		return nil, err
	}

	attempts, err := s.repo.ListAttemptsByArticle(u.ID, articleID)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz attempts")
		return nil, err
	}
	return attempts, nil
}
