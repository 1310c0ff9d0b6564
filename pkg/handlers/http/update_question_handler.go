package http

import (
	appQuestion "github.com/NeuralTrust/qa-service/pkg/app/question"
	"github.com/NeuralTrust/qa-service/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type updateQuestionHandler struct {
	logger  *logrus.Logger
	service appQuestion.Service
}

func NewUpdateQuestionHandler(logger *logrus.Logger, service appQuestion.Service) Handler {
	return &updateQuestionHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Update a Question
// @Description Replaces title, content and tags. Only the author may update a question.
// @Tags Questions
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param question_id path string true "Question ID"
// @Param question body request.QuestionRequest true "Updated question data"
// @Success 200 {object} question.Question "Question updated"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Not the author"
// @Failure 404 {object} map[string]interface{} "Question not found"
// @Router /api/v1/questions/{question_id} [put]
func (h *updateQuestionHandler) Handle(c *fiber.Ctx) error {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	id, err := questionIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid question ID"})
	}

	var req request.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity, err := h.service.Update(c.Context(), accountID, id, appQuestion.Input{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return questionErrorResponse(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
