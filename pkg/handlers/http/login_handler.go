package http

import (
	"errors"

	appAccount "github.com/NeuralTrust/qa-service/pkg/app/account"
	"github.com/NeuralTrust/qa-service/pkg/domain/account"
	"github.com/NeuralTrust/qa-service/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type loginHandler struct {
	logger  *logrus.Logger
	service appAccount.Service
}

func NewLoginHandler(logger *logrus.Logger, service appAccount.Service) Handler {
	return &loginHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Log in
// @Description Exchanges email and password for a bearer token.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param credentials body request.CredentialsRequest true "Email and password"
// @Success 200 {object} map[string]interface{} "Token"
// @Failure 401 {object} map[string]interface{} "Wrong email or password"
// @Router /api/v1/login [post]
func (h *loginHandler) Handle(c *fiber.Ctx) error {
	var req request.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("login failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": internalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}
