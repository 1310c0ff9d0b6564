package repository

import (
	"context"
	"errors"

	"github.com/NeuralTrust/qa-service/pkg/domain"
	"github.com/NeuralTrust/qa-service/pkg/domain/question"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) question.Repository {
	return &questionRepository{
		db: db,
	}
}

func (r *questionRepository) Create(ctx context.Context, q *question.Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *questionRepository) Update(ctx context.Context, q *question.Question) error {
	result := r.db.WithContext(ctx).
		Model(q).
		Select("title", "content", "tags", "updated_at").
		Updates(q)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("question", q.ID)
	}
	return nil
}

func (r *questionRepository) GetByID(ctx context.Context, id uuid.UUID) (*question.Question, error) {
	var entity question.Question
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("question", id)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *questionRepository) List(ctx context.Context, page domain.Pagination) ([]*question.Question, error) {
	var questions []*question.Question
	query := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Offset(page.Offset)
	if page.Limit != nil {
		query = query.Limit(*page.Limit)
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&question.Question{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("question", id)
	}
	return nil
}
