package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Question
	ListQuestionsHandler  Handler
	GetQuestionHandler    Handler
	CreateQuestionHandler Handler
	UpdateQuestionHandler Handler
	DeleteQuestionHandler Handler

	// Answer
	ListAnswersHandler Handler
	AddAnswerHandler   Handler

	// Account
	RegistrationHandler Handler
	LoginHandler        Handler

	GetVersionHandler Handler
}
