package mocks

import (
	"context"

	"github.com/NeuralTrust/qa-service/pkg/domain/account"
	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) Register(ctx context.Context, email, plain string) (*account.Account, error) {
	args := m.Called(ctx, email, plain)
	entity, _ := args.Get(0).(*account.Account) //nolint:errcheck
	return entity, args.Error(1)
}

func (m *Service) Login(ctx context.Context, email, plain string) (string, error) {
	args := m.Called(ctx, email, plain)
	return args.String(0), args.Error(1)
}
