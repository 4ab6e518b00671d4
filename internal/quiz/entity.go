package quiz

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quiz is one persisted multiple-choice question belonging to an article. The
// full quiz for an article is the set of rows sharing its ArticleID. Options is
// an ordered JSON list of strings and Answer the string-encoded index of the
// correct option; the option order must never be reshuffled after storage or the
// stored index breaks.
type Quiz struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ArticleID uuid.UUID      `gorm:"type:uuid;not null;index" json:"article_id"`
	Question  string         `gorm:"type:text;not null" json:"question"`
	Options   datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	Answer    string         `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// QuizAttempt is one immutable record of a scored submission, anchored to a
// single quiz row. Rows are only ever appended.
type QuizAttempt struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizID     uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Quiz       *Quiz     `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"quiz,omitempty"`
	TotalScore int       `gorm:"not null" json:"total_score"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// UserScore caches the best attempt score per (user, quiz) pair.
type UserScore struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_quiz" json:"user_id"`
	QuizID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_quiz" json:"quiz_id"`
	Quiz       *Quiz     `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	TotalScore int       `gorm:"not null" json:"total_score"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// QuestionInput is the client-facing question shape: question text, an ordered
// option list and the correct option's index.
type QuestionInput struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

// DecodeQuestion converts a stored row back to the client-facing shape.
func (q *Quiz) DecodeQuestion() (QuestionInput, error) {
	var options []string
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return QuestionInput{}, err
	}
	correct, err := strconv.Atoi(q.Answer)
	if err != nil {
		return QuestionInput{}, err
	}
	return QuestionInput{Question: q.Question, Options: options, Correct: correct}, nil
}
