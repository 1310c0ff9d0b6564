package account

import (
	"context"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=account_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
}
