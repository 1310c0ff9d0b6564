package answer

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=answer_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, a *Answer) error
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*Answer, error)
}
