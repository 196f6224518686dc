package controllers

import (
	"github.com/gofiber/fiber/v2"

	"content-planner/dto"
	"content-planner/internal/models"
)

// OptionsHandler godoc
// @Summary Form choices for the post editor
// @Tags options
// @Produce json
// @Success 200 {object} dto.OptionsResponse
// @Router /options [get]
func OptionsHandler() fiber.Handler {
	resp := dto.OptionsResponse{
		Frequencies:     models.Frequencies,
		Platforms:       models.Platforms,
		DefaultPostTime: models.DefaultPostTime,
	}
	return func(c *fiber.Ctx) error {
		return c.JSON(resp)
	}
}
