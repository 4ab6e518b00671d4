package user

import (
	"time"

	"github.com/google/uuid"
)

// User is created on the first authenticated action. SubjectID is the external
// identity provider's stable subject id; name and email are refreshed on login.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID    string    `gorm:"type:text;not null;uniqueIndex" json:"subject_id"`
	Email        string    `gorm:"type:text;not null" json:"email"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	RefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
