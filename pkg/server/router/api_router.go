package router

import (
	"errors"

	handlers "github.com/NeuralTrust/qa-service/pkg/handlers/http"
	"github.com/NeuralTrust/qa-service/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

var ErrInvalidMiddlewareTransport = errors.New("invalid middleware transport")

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	if r.middlewareTransport == nil || r.middlewareTransport.AuthMiddleware == nil {
		return ErrInvalidMiddlewareTransport
	}

	router.Static("/swagger.json", "./docs/swagger.json")
	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: "/swagger.json",
	}))

	router.Get("/version", r.handlerTransport.GetVersionHandler.Handle)

	// Existing clients call the routes without a prefix.
	r.addRoutes(router)
	r.addRoutes(router.Group("/api/v1"))
	return nil
}

func (r *apiRouter) addRoutes(router fiber.Router) {
	auth := r.middlewareTransport.AuthMiddleware.Middleware()
	h := r.handlerTransport

	questions := router.Group("/questions")
	{
		questions.Get("", h.ListQuestionsHandler.Handle)
		questions.Post("", auth, h.CreateQuestionHandler.Handle)
		questions.Get("/:question_id", h.GetQuestionHandler.Handle)
		questions.Put("/:question_id", auth, h.UpdateQuestionHandler.Handle)
		questions.Delete("/:question_id", auth, h.DeleteQuestionHandler.Handle)
		questions.Get("/:question_id/answers", h.ListAnswersHandler.Handle)
	}

	router.Post("/answers", auth, h.AddAnswerHandler.Handle)

	router.Post("/registration", h.RegistrationHandler.Handle)
	router.Post("/login", h.LoginHandler.Handle)
}
