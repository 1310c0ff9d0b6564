package question

import (
	"errors"
	"time"

	"github.com/NeuralTrust/qa-service/pkg/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
)

type Question struct {
	ID        uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string             `json:"title" gorm:"type:text;not null"`
	Content   string             `json:"content" gorm:"type:text;not null"`
	Tags      domain.StringArray `json:"tags,omitempty" gorm:"type:text[]"`
	AccountID uuid.UUID          `json:"account_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now
	return nil
}

func (q *Question) BeforeUpdate(tx *gorm.DB) error {
	q.UpdatedAt = time.Now()
	return nil
}

func (q *Question) TableName() string {
	return "questions"
}

func (q *Question) Validate() error {
	if q.Title == "" {
		return ErrTitleRequired
	}
	if q.Content == "" {
		return ErrContentRequired
	}
	return nil
}

func (q *Question) IsOwnedBy(accountID uuid.UUID) bool {
	return q.AccountID == accountID
}
