package article

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("article record not found")

type ArticleRepository interface {
	Create(a *Article) error
	// ListByUser returns the caller's articles newest first, each with its
	// question set preloaded.
	ListByUser(userID uuid.UUID) ([]*Article, error)
	FindByIDAndUser(id, userID uuid.UUID) (*Article, error)
	Update(a *Article) error
	Delete(id, userID uuid.UUID) error
	ExistsByIDAndUser(id, userID uuid.UUID) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(a *Article) error {
	return r.db.Create(a).Error
}

func (r *articleRepository) ListByUser(userID uuid.UUID) ([]*Article, error) {
	var articles []*Article
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Quizzes", func(db *gorm.DB) *gorm.DB {
			return db.Order("quizzes.created_at ASC")
		}).
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) FindByIDAndUser(id, userID uuid.UUID) (*Article, error) {
	var a Article
	if err := r.db.
		Preload("Quizzes", func(db *gorm.DB) *gorm.DB {
			return db.Order("quizzes.created_at ASC")
		}).
		First(&a, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *articleRepository) Update(a *Article) error {
	return r.db.Save(a).Error
}

func (r *articleRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&Article{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *articleRepository) ExistsByIDAndUser(id, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&Article{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
