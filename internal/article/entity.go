package article

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/quiz"
	"github.com/saulo-duarte/quizapp-lambda/internal/user"
)

// Article is a user-submitted text plus its generated summary. Deleting an
// article cascades to its quiz rows and, through them, to attempts and cached
// scores.
type Article struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *user.User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title     string      `gorm:"type:text;not null" json:"title"`
	Content   string      `gorm:"type:text;not null" json:"content"`
	Summary   string      `gorm:"type:text;not null" json:"summary"`
	Quizzes   []quiz.Quiz `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"quizzes"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
