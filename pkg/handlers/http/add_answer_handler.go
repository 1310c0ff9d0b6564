package http

import (
	"errors"

	appAnswer "github.com/NeuralTrust/qa-service/pkg/app/answer"
	"github.com/NeuralTrust/qa-service/pkg/domain"
	"github.com/NeuralTrust/qa-service/pkg/domain/answer"
	"github.com/NeuralTrust/qa-service/pkg/handlers/http/request"
	"github.com/NeuralTrust/qa-service/pkg/infra/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type addAnswerHandler struct {
	logger  *logrus.Logger
	creator appAnswer.Creator
}

func NewAddAnswerHandler(logger *logrus.Logger, creator appAnswer.Creator) Handler {
	return &addAnswerHandler{
		logger:  logger,
		creator: creator,
	}
}

// Handle @Summary Add an Answer
// @Description Runs the content through the profanity service and stores the censored text.
// @Description A rejection from the profanity service is passed through with its status; any other moderation failure is a 500.
// @Tags Answers
// @Accept x-www-form-urlencoded
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param content formData string true "Answer text"
// @Param question_id formData string true "Question ID"
// @Success 201 {object} answer.Answer "Answer created"
// @Failure 400 {object} map[string]interface{} "Invalid form"
// @Failure 404 {object} map[string]interface{} "Question not found"
// @Failure 500 {object} map[string]interface{} "Moderation unavailable"
// @Router /api/v1/answers [post]
func (h *addAnswerHandler) Handle(c *fiber.Ctx) error {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req request.AddAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form body"})
	}
	questionID, err := req.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity, err := h.creator.Create(c.Context(), appAnswer.CreateInput{
		Content:    req.Content,
		QuestionID: questionID,
		AccountID:  accountID,
	})
	if err != nil {
		switch {
		case moderation.IsModerationError(err):
			return moderationErrorResponse(c, err)
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, answer.ErrContentRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to add answer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": internalServerError})
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}
