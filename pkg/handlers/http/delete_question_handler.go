package http

import (
	"fmt"

	appQuestion "github.com/NeuralTrust/qa-service/pkg/app/question"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type deleteQuestionHandler struct {
	logger  *logrus.Logger
	service appQuestion.Service
}

func NewDeleteQuestionHandler(logger *logrus.Logger, service appQuestion.Service) Handler {
	return &deleteQuestionHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Delete a Question
// @Description Removes a question together with its answers. Only the author may delete it.
// @Tags Questions
// @Produce plain
// @Param Authorization header string true "Bearer token"
// @Param question_id path string true "Question ID"
// @Success 200 {string} string "Question deleted"
// @Failure 401 {object} map[string]interface{} "Not the author"
// @Failure 404 {object} map[string]interface{} "Question not found"
// @Router /api/v1/questions/{question_id} [delete]
func (h *deleteQuestionHandler) Handle(c *fiber.Ctx) error {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	id, err := questionIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid question ID"})
	}

	if err := h.service.Delete(c.Context(), accountID, id); err != nil {
		return questionErrorResponse(c, h.logger, err)
	}

	h.logger.WithField("question_id", id.String()).Info("question deleted")
	return c.Status(fiber.StatusOK).SendString(fmt.Sprintf("Question %s deleted", id))
}
