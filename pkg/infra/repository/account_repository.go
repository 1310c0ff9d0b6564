package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/NeuralTrust/qa-service/pkg/domain/account"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) account.Repository {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	a.Email = normalizeEmail(a.Email)
	err := r.db.WithContext(ctx).Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return account.ErrAccountAlreadyExists
	}
	return err
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var entity account.Account
	if err := r.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrInvalidCredentials
		}
		return nil, err
	}
	return &entity, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
