package mocks

import (
	"github.com/NeuralTrust/qa-service/pkg/infra/auth/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Manager struct {
	mock.Mock
}

func (m *Manager) CreateToken(accountID uuid.UUID) (string, error) {
	args := m.Called(accountID)
	return args.String(0), args.Error(1)
}

func (m *Manager) DecodeToken(tokenString string) (*jwt.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*jwt.Claims) //nolint:errcheck
	return claims, args.Error(1)
}
