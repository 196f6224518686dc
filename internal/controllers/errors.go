package controllers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"content-planner/dto"
	"content-planner/internal/apperrors"
)

// respondError maps a service error onto a status and a JSON error body.
func respondError(c *fiber.Ctx, err error) error {
	var verr *apperrors.ValidationError
	var ferr *fiber.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, apperrors.ErrPostNotFound), errors.Is(err, apperrors.ErrImageNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrBusy):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	case apperrors.IsConfig(err):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: err.Error()})
	case apperrors.IsRemote(err):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Error: "upstream timed out"})
	case errors.As(err, &ferr):
		return c.Status(ferr.Code).JSON(dto.ErrorResponse{Error: ferr.Message})
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
}

// AppConfig is the Fiber configuration the planner runs with. Immutable
// keeps Params and header values valid after the handler returns, since the
// services keep ids and session keys.
func AppConfig() fiber.Config {
	return fiber.Config{
		AppName:      "content-planner",
		ErrorHandler: ErrorHandler,
		Immutable:    true,
		BodyLimit:    1 << 20,
	}
}

// ErrorHandler renders errors that escape handlers and middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
}
