package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"content-planner/dto"
	"content-planner/internal/apperrors"
	"content-planner/internal/services"
)

// ListPostsHandler godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Security BearerAuth
// @Router /posts [get]
func ListPostsHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(posts.List())
	}
}

// GetPostHandler godoc
// @Summary Get one post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [get]
func GetPostHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := posts.Get(c.Params("id"))
		if !ok {
			return respondError(c, apperrors.ErrPostNotFound)
		}
		return c.JSON(p)
	}
}

// CreatePostHandler godoc
// @Summary Create a scheduled post
// @Description The id is assigned by the server unless a free one is supplied.
// @Tags posts
// @Accept json
// @Produce json
// @Param body body dto.PostRequest true "Post"
// @Success 201 {object} models.Post
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /posts [post]
func CreatePostHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PostRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		draft, err := body.ToModel()
		if err != nil {
			return respondError(c, err)
		}

		created, err := posts.Create(c.UserContext(), draft)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdatePostHandler godoc
// @Summary Replace a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param body body dto.PostRequest true "Post"
// @Success 200 {object} models.Post
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [put]
func UpdatePostHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PostRequest
		if err := c.BodyParser(&body); err != nil {
			return badBody(c)
		}
		p, err := body.ToModel()
		if err != nil {
			return respondError(c, err)
		}

		updated, err := posts.Update(c.UserContext(), utils.CopyString(c.Params("id")), p)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeletePostHandler godoc
// @Summary Delete a post
// @Description Deleting an unknown id is not an error; deleted is false.
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.DeleteResponse
// @Security BearerAuth
// @Router /posts/{id} [delete]
func DeletePostHandler(posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deleted := posts.Delete(c.UserContext(), c.Params("id"))
		return c.JSON(dto.DeleteResponse{Deleted: deleted})
	}
}

// AppendPostHashtagsHandler godoc
// @Summary Generate hashtags for a post and append them to its description
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id}/hashtags [post]
func AppendPostHashtagsHandler(gen *services.GenerationService, posts *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := gen.AppendHashtags(c.UserContext(), posts, c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}
