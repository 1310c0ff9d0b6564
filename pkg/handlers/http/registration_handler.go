package http

import (
	"errors"

	appAccount "github.com/NeuralTrust/qa-service/pkg/app/account"
	"github.com/NeuralTrust/qa-service/pkg/domain/account"
	"github.com/NeuralTrust/qa-service/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type registrationHandler struct {
	logger  *logrus.Logger
	service appAccount.Service
}

func NewRegistrationHandler(logger *logrus.Logger, service appAccount.Service) Handler {
	return &registrationHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Register an Account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param account body request.CredentialsRequest true "Email and password"
// @Success 201 {object} account.Account "Account created"
// @Failure 400 {object} map[string]interface{} "Invalid credentials payload"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/v1/registration [post]
func (h *registrationHandler) Handle(c *fiber.Ctx) error {
	var req request.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	entity, err := h.service.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidEmail), errors.Is(err, account.ErrPasswordRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, account.ErrAccountAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to register account")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": internalServerError})
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}
