package http

import (
	"github.com/NeuralTrust/qa-service/pkg/domain/answer"
	"github.com/NeuralTrust/qa-service/pkg/domain/question"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listAnswersHandler struct {
	logger    *logrus.Logger
	questions question.Repository
	answers   answer.Repository
}

func NewListAnswersHandler(logger *logrus.Logger, questions question.Repository, answers answer.Repository) Handler {
	return &listAnswersHandler{
		logger:    logger,
		questions: questions,
		answers:   answers,
	}
}

// Handle @Summary List the Answers of a Question
// @Tags Answers
// @Produce json
// @Param question_id path string true "Question ID"
// @Success 200 {array} answer.Answer "List of answers"
// @Failure 404 {object} map[string]interface{} "Question not found"
// @Router /api/v1/questions/{question_id}/answers [get]
func (h *listAnswersHandler) Handle(c *fiber.Ctx) error {
	id, err := questionIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid question ID"})
	}
	if _, err := h.questions.GetByID(c.Context(), id); err != nil {
		return questionErrorResponse(c, h.logger, err)
	}

	answers, err := h.answers.ListByQuestion(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("question_id", id.String()).Error("failed to list answers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": internalServerError})
	}
	if answers == nil {
		answers = []*answer.Answer{}
	}
	return c.Status(fiber.StatusOK).JSON(answers)
}
