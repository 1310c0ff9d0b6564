package http

import (
	"errors"

	"github.com/NeuralTrust/qa-service/pkg/common"
	"github.com/NeuralTrust/qa-service/pkg/domain"
	"github.com/NeuralTrust/qa-service/pkg/infra/moderation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const internalServerError = "internal server error"

// moderationErrorResponse passes an upstream 4xx through with its message.
// Every other moderation failure is reported as a 500.
func moderationErrorResponse(c *fiber.Ctx, err error) error {
	var clientErr *moderation.UpstreamClientError
	if errors.As(err, &clientErr) {
		return c.Status(clientErr.Status).JSON(fiber.Map{"error": clientErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": internalServerError})
}

func questionErrorResponse(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	switch {
	case domain.IsNotFoundError(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not the author of this question"})
	}
	logger.WithError(err).Error("question operation failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": internalServerError})
}

func accountIDFromContext(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(common.AccountIDContextKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func questionIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("question_id"))
}
