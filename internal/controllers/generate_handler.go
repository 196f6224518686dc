package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"content-planner/dto"
	"content-planner/internal/services"
)

// SessionHeader names the caller's image session; a browser tab sends a
// random value so its generated image is released independently.
const SessionHeader = "X-Session-ID"

func sessionKey(c *fiber.Ctx) string {
	if s := strings.TrimSpace(c.Get(SessionHeader)); s != "" {
		return utils.CopyString(s)
	}
	return services.DefaultSession
}

// GenerateHashtagsHandler godoc
// @Summary Draft hashtags for a description
// @Tags generate
// @Accept json
// @Produce json
// @Param body body dto.HashtagRequest true "Description"
// @Success 200 {object} services.HashtagResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /generate/hashtags [post]
func GenerateHashtagsHandler(gen *services.GenerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.HashtagRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		res, err := gen.GenerateHashtags(c.UserContext(), body.Description)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// HashtagStatusHandler godoc
// @Summary Hashtag generation status
// @Tags generate
// @Produce json
// @Success 200 {object} services.AssistStatus
// @Security BearerAuth
// @Router /generate/hashtags/status [get]
func HashtagStatusHandler(gen *services.GenerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(gen.HashtagStatus())
	}
}

// GenerateImageHandler godoc
// @Summary Render an image from a prompt
// @Description The new image replaces the session's previous one, which is released.
// @Tags generate
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session key"
// @Param body body dto.ImageRequest true "Prompt"
// @Success 200 {object} dto.ImageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /generate/image [post]
func GenerateImageHandler(gen *services.GenerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ImageRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		stored, err := gen.GenerateImage(c.UserContext(), sessionKey(c), body.Prompt)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.ImageResponse{
			Handle:      stored.Handle,
			URL:         "/images/" + stored.Handle,
			ContentType: stored.Image.ContentType,
			Size:        len(stored.Image.Data),
		})
	}
}

// ImageStatusHandler godoc
// @Summary Image generation status of the caller's session
// @Tags generate
// @Produce json
// @Param X-Session-ID header string false "Session key"
// @Success 200 {object} services.AssistStatus
// @Security BearerAuth
// @Router /generate/image/status [get]
func ImageStatusHandler(gen *services.GenerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(gen.ImageStatus(sessionKey(c)))
	}
}

// CloseImageSessionHandler godoc
// @Summary Release the session's current image
// @Tags generate
// @Param X-Session-ID header string false "Session key"
// @Success 204
// @Security BearerAuth
// @Router /generate/image/session [delete]
func CloseImageSessionHandler(gen *services.GenerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gen.CloseSession(sessionKey(c))
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetImageHandler godoc
// @Summary Fetch generated image bytes
// @Tags images
// @Produce png
// @Param handle path string true "Image handle"
// @Param download query string false "1 to download as attachment"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /images/{handle} [get]
func GetImageHandler(gen *services.GenerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stored, err := gen.Image(c.Params("handle"))
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, stored.Image.ContentType)
		c.Set(fiber.HeaderCacheControl, "no-store")
		if c.QueryBool("download") {
			name := fmt.Sprintf("generated-image-%d.png", stored.CreatedAt.UnixMilli())
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
		}
		return c.Send(stored.Image.Data)
	}
}

// DeleteImageHandler godoc
// @Summary Release an image handle
// @Tags images
// @Param handle path string true "Image handle"
// @Success 204
// @Security BearerAuth
// @Router /images/{handle} [delete]
func DeleteImageHandler(gen *services.GenerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gen.ReleaseImage(c.Params("handle"))
		return c.SendStatus(fiber.StatusNoContent)
	}
}
