package http

import (
	"github.com/NeuralTrust/qa-service/pkg/domain/question"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getQuestionHandler struct {
	logger *logrus.Logger
	repo   question.Repository
}

func NewGetQuestionHandler(logger *logrus.Logger, repo question.Repository) Handler {
	return &getQuestionHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary Retrieve a Question by ID
// @Tags Questions
// @Produce json
// @Param question_id path string true "Question ID"
// @Success 200 {object} question.Question "Question details"
// @Failure 404 {object} map[string]interface{} "Question not found"
// @Router /api/v1/questions/{question_id} [get]
func (h *getQuestionHandler) Handle(c *fiber.Ctx) error {
	id, err := questionIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid question ID"})
	}
	entity, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return questionErrorResponse(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
