package mocks

import (
	"context"

	app "github.com/NeuralTrust/qa-service/pkg/app/answer"
	"github.com/NeuralTrust/qa-service/pkg/domain/answer"
	"github.com/stretchr/testify/mock"
)

type Creator struct {
	mock.Mock
}

func (m *Creator) Create(ctx context.Context, input app.CreateInput) (*answer.Answer, error) {
	args := m.Called(ctx, input)
	entity, _ := args.Get(0).(*answer.Answer) //nolint:errcheck
	return entity, args.Error(1)
}
