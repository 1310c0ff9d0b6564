package http

import (
	appQuestion "github.com/NeuralTrust/qa-service/pkg/app/question"
	"github.com/NeuralTrust/qa-service/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createQuestionHandler struct {
	logger  *logrus.Logger
	service appQuestion.Service
}

func NewCreateQuestionHandler(logger *logrus.Logger, service appQuestion.Service) Handler {
	return &createQuestionHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Create a new Question
// @Tags Questions
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param question body request.QuestionRequest true "Question data"
// @Success 201 {object} question.Question "Question created"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /api/v1/questions [post]
func (h *createQuestionHandler) Handle(c *fiber.Ctx) error {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req request.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity, err := h.service.Create(c.Context(), accountID, appQuestion.Input{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return questionErrorResponse(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}
