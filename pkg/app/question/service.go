package question

import (
	"context"

	"github.com/NeuralTrust/qa-service/pkg/domain"
	domainquestion "github.com/NeuralTrust/qa-service/pkg/domain/question"
	"github.com/google/uuid"
)

type Input struct {
	Title   string
	Content string
	Tags    []string
}

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=question_service_mock.go --case=underscore --with-expecter
type Service interface {
	Create(ctx context.Context, accountID uuid.UUID, input Input) (*domainquestion.Question, error)
	Update(ctx context.Context, accountID, id uuid.UUID, input Input) (*domainquestion.Question, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}

type service struct {
	repo domainquestion.Repository
}

func NewService(repo domainquestion.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, accountID uuid.UUID, input Input) (*domainquestion.Question, error) {
	entity := &domainquestion.Question{
		Title:     input.Title,
		Content:   input.Content,
		Tags:      input.Tags,
		AccountID: accountID,
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Update replaces title, content and tags. Only the author may update.
func (s *service) Update(ctx context.Context, accountID, id uuid.UUID, input Input) (*domainquestion.Question, error) {
	entity, err := s.owned(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	entity.Title = input.Title
	entity.Content = input.Content
	entity.Tags = input.Tags
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *service) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	if _, err := s.owned(ctx, accountID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) owned(ctx context.Context, accountID, id uuid.UUID) (*domainquestion.Question, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.IsOwnedBy(accountID) {
		return nil, domain.ErrUnauthorized
	}
	return entity, nil
}
