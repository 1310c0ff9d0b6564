package question

import (
	"context"

	"github.com/NeuralTrust/qa-service/pkg/domain"
	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=question_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, q *Question) error
	Update(ctx context.Context, q *Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*Question, error)
	List(ctx context.Context, page domain.Pagination) ([]*Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
