package account

import (
	"context"
	"fmt"

	domain "github.com/NeuralTrust/qa-service/pkg/domain/account"
	"github.com/NeuralTrust/qa-service/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/qa-service/pkg/infra/auth/password"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=account_service_mock.go --case=underscore --with-expecter
type Service interface {
	Register(ctx context.Context, email, plain string) (*domain.Account, error)
	Login(ctx context.Context, email, plain string) (string, error)
}

type service struct {
	repo   domain.Repository
	tokens jwt.Manager
	params password.Params
	logger *logrus.Logger
}

func NewService(repo domain.Repository, tokens jwt.Manager, params password.Params, logger *logrus.Logger) Service {
	return &service{
		repo:   repo,
		tokens: tokens,
		params: params,
		logger: logger,
	}
}

func (s *service) Register(ctx context.Context, email, plain string) (*domain.Account, error) {
	if err := domain.ValidateCredentials(email, plain); err != nil {
		return nil, err
	}
	hash, err := password.Hash(plain, s.params)
	if err != nil {
		return nil, err
	}
	entity := &domain.Account{Email: email, Password: hash}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	s.logger.WithField("account_id", entity.ID.String()).Info("account registered")
	return entity, nil
}

// Login returns a signed session token. Unknown emails and wrong passwords
// produce the same error.
func (s *service) Login(ctx context.Context, email, plain string) (string, error) {
	entity, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	ok, err := password.Verify(plain, entity.Password)
	if err != nil {
		s.logger.WithError(err).WithField("account_id", entity.ID.String()).Error("stored password hash unreadable")
		return "", domain.ErrInvalidCredentials
	}
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.tokens.CreateToken(entity.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
