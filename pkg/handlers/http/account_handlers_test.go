package http

import (
	"errors"
	"net/http"
	"testing"

	accountMocks "github.com/NeuralTrust/qa-service/pkg/app/account/mocks"
	"github.com/NeuralTrust/qa-service/pkg/domain/account"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistrationHandler(t *testing.T) {
	service := new(accountMocks.Service)
	app := fiber.New()
	app.Post("/api/v1/registration", NewRegistrationHandler(newTestLogger(), service).Handle)

	service.On("Register", mock.Anything, "new@example.com", "secret").
		Return(&account.Account{ID: uuid.New(), Email: "new@example.com", Password: "hash"}, nil)
	service.On("Register", mock.Anything, "taken@example.com", "secret").
		Return(nil, account.ErrAccountAlreadyExists)
	service.On("Register", mock.Anything, "broken", "secret").
		Return(nil, account.ErrInvalidEmail)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/registration", map[string]string{
		"email": "new@example.com", "password": "secret",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "new@example.com", body["email"])
	assert.NotContains(t, body, "password")

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/registration", map[string]string{
		"email": "taken@example.com", "password": "secret",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/registration", map[string]string{
		"email": "broken", "password": "secret",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginHandler(t *testing.T) {
	service := new(accountMocks.Service)
	app := fiber.New()
	app.Post("/api/v1/login", NewLoginHandler(newTestLogger(), service).Handle)

	service.On("Login", mock.Anything, "user@example.com", "secret").Return("signed-token", nil)
	service.On("Login", mock.Anything, "user@example.com", "wrong").Return("", account.ErrInvalidCredentials)
	service.On("Login", mock.Anything, "db@example.com", "secret").Return("", errors.New("connection reset"))

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "user@example.com", "password": "secret",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "signed-token", body["token"])

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "user@example.com", "password": "wrong",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/login", map[string]string{
		"email": "db@example.com", "password": "secret",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
