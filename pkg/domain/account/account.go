package account

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidCredentials   = errors.New("wrong email or password")
	ErrInvalidEmail         = errors.New("email is not valid")
	ErrPasswordRequired     = errors.New("password is required")
)

type Account struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"type:text;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	return nil
}

func (a *Account) TableName() string {
	return "accounts"
}

// ValidateCredentials checks a registration or login payload before any
// storage access.
func ValidateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}
