package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"content-planner/dto"
	"content-planner/internal/apperrors"
	"content-planner/internal/middleware"
)

// AuthSettings configures the owner login.
type AuthSettings struct {
	Secret       string
	PasswordHash string
	TokenTTL     time.Duration
}

// LoginHandler godoc
// @Summary Exchange the owner password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Password"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /auth/login [post]
func LoginHandler(auth AuthSettings) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if auth.Secret == "" || auth.PasswordHash == "" {
			return respondError(c, &apperrors.ConfigError{Service: "login", Setting: "ADMIN_PASSWORD_HASH"})
		}

		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(auth.PasswordHash), []byte(body.Password)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid password"})
		}

		ttl := auth.TokenTTL
		if ttl <= 0 {
			ttl = 12 * time.Hour
		}
		token, exp, err := middleware.IssueToken(auth.Secret, middleware.DefaultSubject, ttl)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "could not sign token"})
		}
		return c.JSON(dto.LoginResponse{AccessToken: token, ExpiresAt: exp.Unix()})
	}
}
