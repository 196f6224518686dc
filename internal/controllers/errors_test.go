package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-planner/dto"
	"content-planner/internal/apperrors"
)

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		field  string
	}{
		{name: "validation", err: apperrors.Invalid("title", "title is required"), status: 400, field: "title"},
		{name: "post not found", err: fmt.Errorf("update: %w", apperrors.ErrPostNotFound), status: 404},
		{name: "image not found", err: apperrors.ErrImageNotFound, status: 404},
		{name: "busy", err: apperrors.ErrBusy, status: 409},
		{name: "config", err: &apperrors.ConfigError{Service: "image generation", Setting: "HUGGINGFACE_API_KEY"}, status: 503},
		{name: "remote", err: &apperrors.RemoteError{Service: "image generation", Status: 500}, status: 502},
		{name: "timeout", err: context.DeadlineExceeded, status: 504},
		{name: "fiber", err: fiber.ErrUnauthorized, status: 401},
		{name: "unknown", err: errors.New("kaboom"), status: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.field, body.Field)
		})
	}
}

func TestSessionKey(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(sessionKey(c)) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "default", string(raw))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(SessionHeader, " tab-7 ")
	resp, err = app.Test(req)
	require.NoError(t, err)
	raw, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "tab-7", string(raw))
}
