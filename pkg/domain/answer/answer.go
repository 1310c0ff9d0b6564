package answer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrContentRequired = errors.New("content is required")

type Answer struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`
	AccountID  uuid.UUID `json:"account_id" gorm:"type:uuid;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	return nil
}

func (a *Answer) TableName() string {
	return "answers"
}
