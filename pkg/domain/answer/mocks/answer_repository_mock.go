package mocks

import (
	"context"

	"github.com/NeuralTrust/qa-service/pkg/domain/answer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, a *answer.Answer) error {
	return m.Called(ctx, a).Error(0)
}

func (m *Repository) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*answer.Answer, error) {
	args := m.Called(ctx, questionID)
	answers, _ := args.Get(0).([]*answer.Answer) //nolint:errcheck
	return answers, args.Error(1)
}
