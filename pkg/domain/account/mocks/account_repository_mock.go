package mocks

import (
	"context"

	"github.com/NeuralTrust/qa-service/pkg/domain/account"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *Repository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*account.Account) //nolint:errcheck
	return a, args.Error(1)
}
