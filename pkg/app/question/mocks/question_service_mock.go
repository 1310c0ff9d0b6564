package mocks

import (
	"context"

	app "github.com/NeuralTrust/qa-service/pkg/app/question"
	"github.com/NeuralTrust/qa-service/pkg/domain/question"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) Create(ctx context.Context, accountID uuid.UUID, input app.Input) (*question.Question, error) {
	args := m.Called(ctx, accountID, input)
	entity, _ := args.Get(0).(*question.Question) //nolint:errcheck
	return entity, args.Error(1)
}

func (m *Service) Update(ctx context.Context, accountID, id uuid.UUID, input app.Input) (*question.Question, error) {
	args := m.Called(ctx, accountID, id, input)
	entity, _ := args.Get(0).(*question.Question) //nolint:errcheck
	return entity, args.Error(1)
}

func (m *Service) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	return m.Called(ctx, accountID, id).Error(0)
}
