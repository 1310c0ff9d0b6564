package answer

import (
	"context"
	"fmt"

	domain "github.com/NeuralTrust/qa-service/pkg/domain/answer"
	"github.com/NeuralTrust/qa-service/pkg/domain/question"
	"github.com/NeuralTrust/qa-service/pkg/infra/moderation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CreateInput struct {
	Content    string
	QuestionID uuid.UUID
	AccountID  uuid.UUID
}

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=answer_creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, input CreateInput) (*domain.Answer, error)
}

type creator struct {
	answers   domain.Repository
	questions question.Repository
	moderator moderation.Moderator
	logger    *logrus.Logger
}

func NewCreator(
	answers domain.Repository,
	questions question.Repository,
	moderator moderation.Moderator,
	logger *logrus.Logger,
) Creator {
	return &creator{
		answers:   answers,
		questions: questions,
		moderator: moderator,
		logger:    logger,
	}
}

// Create stores the censored form of the answer. Nothing is written when
// moderation fails.
func (c *creator) Create(ctx context.Context, input CreateInput) (*domain.Answer, error) {
	if input.Content == "" {
		return nil, domain.ErrContentRequired
	}
	if _, err := c.questions.GetByID(ctx, input.QuestionID); err != nil {
		return nil, err
	}

	censored, err := c.moderator.Check(ctx, input.Content)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"question_id": input.QuestionID.String(),
			"outcome":     moderation.Outcome(err),
		}).Error("answer moderation failed")
		return nil, err
	}

	entity := &domain.Answer{
		Content:    censored,
		QuestionID: input.QuestionID,
		AccountID:  input.AccountID,
	}
	if err := c.answers.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to store answer: %w", err)
	}
	return entity, nil
}
