package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository interface {
	GetByID(id uuid.UUID) (*Quiz, error)
	ListByArticle(articleID uuid.UUID) ([]*Quiz, error)
	// ReplaceForArticle discards every quiz row of the article and inserts the
	// new set in one transaction, so no empty-question window is observable.
	ReplaceForArticle(articleID uuid.UUID, quizzes []*Quiz) error
	// RecordAttempt appends the attempt row and applies the best-score retention
	// rule in the same transaction. The cache update is a single conditional
	// upsert, so concurrent submissions cannot lose updates.
	RecordAttempt(attempt *QuizAttempt) error
	ListAttemptsByArticle(userID, articleID uuid.UUID) ([]*QuizAttempt, error)
	GetBestScore(userID, quizID uuid.UUID) (*UserScore, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) GetByID(id uuid.UUID) (*Quiz, error) {
	var q Quiz
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) ListByArticle(articleID uuid.UUID) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ReplaceForArticle(articleID uuid.UUID, quizzes []*Quiz) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Quiz{}, "article_id = ?", articleID).Error; err != nil {
			return err
		}
		if len(quizzes) == 0 {
			return nil
		}
		return tx.Create(&quizzes).Error
	})
}

func (r *quizRepository) RecordAttempt(attempt *QuizAttempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		score := UserScore{
			ID:         uuid.New(),
			UserID:     attempt.UserID,
			QuizID:     attempt.QuizID,
			TotalScore: attempt.TotalScore,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_score": attempt.TotalScore,
			}),
			Where: clause.Where{
				Exprs: []clause.Expression{
					gorm.Expr("user_scores.total_score < ?", attempt.TotalScore),
				},
			},
		}).Create(&score).Error
	})
}

func (r *quizRepository) ListAttemptsByArticle(userID, articleID uuid.UUID) ([]*QuizAttempt, error) {
	var attempts []*QuizAttempt
	if err := r.db.
		Joins("JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
		Where("quiz_attempts.user_id = ? AND quizzes.article_id = ?", userID, articleID).
		Order("quiz_attempts.created_at DESC").
		Preload("Quiz").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *quizRepository) GetBestScore(userID, quizID uuid.UUID) (*UserScore, error) {
	var score UserScore
	if err := r.db.First(&score, "user_id = ? AND quiz_id = ?", userID, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &score, nil
}
