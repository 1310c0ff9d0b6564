package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Moderator struct {
	mock.Mock
}

func (m *Moderator) Check(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}
