package mocks

import (
	"context"

	"github.com/NeuralTrust/qa-service/pkg/domain"
	"github.com/NeuralTrust/qa-service/pkg/domain/question"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Create(ctx context.Context, q *question.Question) error {
	return m.Called(ctx, q).Error(0)
}

func (m *Repository) Update(ctx context.Context, q *question.Question) error {
	return m.Called(ctx, q).Error(0)
}

func (m *Repository) GetByID(ctx context.Context, id uuid.UUID) (*question.Question, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*question.Question) //nolint:errcheck
	return q, args.Error(1)
}

func (m *Repository) List(ctx context.Context, page domain.Pagination) ([]*question.Question, error) {
	args := m.Called(ctx, page)
	questions, _ := args.Get(0).([]*question.Question) //nolint:errcheck
	return questions, args.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
