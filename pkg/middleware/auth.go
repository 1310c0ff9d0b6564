package middleware

import (
	"errors"
	"strings"

	"github.com/NeuralTrust/qa-service/pkg/common"
	"github.com/NeuralTrust/qa-service/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type authMiddleware struct {
	logger *logrus.Logger
	tokens jwt.Manager
}

func NewAuthMiddleware(logger *logrus.Logger, tokens jwt.Manager) Middleware {
	return &authMiddleware{
		logger: logger,
		tokens: tokens,
	}
}

// Middleware accepts "Bearer <token>" as well as a bare token in the
// Authorization header.
func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := strings.TrimSpace(ctx.Get(common.AuthorizationHeader))
		if header == "" {
			m.logger.Debug("no authorization header provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization token required"})
		}
		token := header
		if len(header) > len(common.BearerPrefix) && strings.EqualFold(header[:len(common.BearerPrefix)], common.BearerPrefix) {
			token = strings.TrimSpace(header[len(common.BearerPrefix):])
		}

		claims, err := m.tokens.DecodeToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token expired"})
			}
			m.logger.WithError(err).Debug("invalid token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		accountID, err := uuid.Parse(claims.AccountID)
		if err != nil {
			m.logger.WithError(err).Debug("token carries an invalid account id")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		ctx.Locals(common.AccountIDContextKey, accountID)
		return ctx.Next()
	}
}
