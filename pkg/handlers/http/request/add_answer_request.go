package request

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type AddAnswerRequest struct {
	Content    string `form:"content"`
	QuestionID string `form:"question_id"`
}

func (r *AddAnswerRequest) Validate() (uuid.UUID, error) {
	if r.Content == "" {
		return uuid.Nil, errors.New("content is required")
	}
	if r.QuestionID == "" {
		return uuid.Nil, errors.New("question_id is required")
	}
	id, err := uuid.Parse(r.QuestionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid question_id: %w", err)
	}
	return id, nil
}
