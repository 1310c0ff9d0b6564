package http

import (
	"github.com/NeuralTrust/qa-service/pkg/domain/question"
	"github.com/NeuralTrust/qa-service/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listQuestionsHandler struct {
	logger *logrus.Logger
	repo   question.Repository
}

func NewListQuestionsHandler(logger *logrus.Logger, repo question.Repository) Handler {
	return &listQuestionsHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary List Questions
// @Description Returns questions ordered by creation time. start and end select a window and must be sent together.
// @Tags Questions
// @Produce json
// @Param start query int false "First row (inclusive)"
// @Param end query int false "Last row (exclusive)"
// @Success 200 {array} question.Question "List of questions"
// @Failure 400 {object} map[string]interface{} "Invalid pagination"
// @Router /api/v1/questions [get]
func (h *listQuestionsHandler) Handle(c *fiber.Ctx) error {
	page, err := request.ExtractPagination(c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	questions, err := h.repo.List(c.Context(), page)
	if err != nil {
		h.logger.WithError(err).Error("failed to list questions")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": internalServerError})
	}
	if questions == nil {
		questions = []*question.Question{}
	}
	return c.Status(fiber.StatusOK).JSON(questions)
}
