package repository

import (
	"context"
	"errors"

	"github.com/NeuralTrust/qa-service/pkg/domain"
	"github.com/NeuralTrust/qa-service/pkg/domain/answer"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) answer.Repository {
	return &answerRepository{
		db: db,
	}
}

func (r *answerRepository) Create(ctx context.Context, a *answer.Answer) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.NewNotFoundError("question", a.QuestionID)
	}
	return err
}

func (r *answerRepository) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*answer.Answer, error) {
	var answers []*answer.Answer
	if err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
