package routes

import (
	"github.com/gofiber/fiber/v2"

	"content-planner/internal/controllers"
	"content-planner/internal/middleware"
	"content-planner/internal/services"
)

type Deps struct {
	Posts      *services.PostService
	Calendar   *services.CalendarService
	Generation *services.GenerationService
	Auth       controllers.AuthSettings
}

// Register mounts the planner API. Routes registered after the bearer guard
// need a token when a secret is configured.
func Register(app *fiber.App, d Deps) {
	SetupAuth(app, d)
	app.Get("/options", controllers.OptionsHandler())

	app.Use(middleware.RequireAuth(d.Auth.Secret))

	SetupRoutesPost(app, d)
	SetupRoutesCalendar(app, d)
	SetupRoutesGenerate(app, d)
	SetupRoutesImages(app, d)
}

func SetupAuth(app *fiber.App, d Deps) {
	app.Post("/auth/login", controllers.LoginHandler(d.Auth))
}

func SetupRoutesPost(r fiber.Router, d Deps) {
	posts := r.Group("/posts")
	posts.Get("/", controllers.ListPostsHandler(d.Posts))
	posts.Post("/", controllers.CreatePostHandler(d.Posts))
	posts.Get("/:id", controllers.GetPostHandler(d.Posts))
	posts.Put("/:id", controllers.UpdatePostHandler(d.Posts))
	posts.Delete("/:id", controllers.DeletePostHandler(d.Posts))
	posts.Post("/:id/hashtags", controllers.AppendPostHashtagsHandler(d.Generation, d.Posts))
}

func SetupRoutesCalendar(r fiber.Router, d Deps) {
	cal := r.Group("/calendar")
	cal.Get("/current", controllers.CurrentMonthHandler(d.Calendar))
	cal.Get("/:year/:month", controllers.MonthHandler(d.Calendar))
	cal.Get("/:year/:month/posts/:id", controllers.PostDaysHandler(d.Calendar))
}

func SetupRoutesGenerate(r fiber.Router, d Deps) {
	gen := r.Group("/generate")
	gen.Post("/hashtags", controllers.GenerateHashtagsHandler(d.Generation))
	gen.Get("/hashtags/status", controllers.HashtagStatusHandler(d.Generation))
	gen.Post("/image", controllers.GenerateImageHandler(d.Generation))
	gen.Get("/image/status", controllers.ImageStatusHandler(d.Generation))
	gen.Delete("/image/session", controllers.CloseImageSessionHandler(d.Generation))
}

func SetupRoutesImages(r fiber.Router, d Deps) {
	images := r.Group("/images")
	images.Get("/:handle", controllers.GetImageHandler(d.Generation))
	images.Delete("/:handle", controllers.DeleteImageHandler(d.Generation))
}
