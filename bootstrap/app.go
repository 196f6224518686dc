package bootstrap

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"content-planner/config"
	"content-planner/internal/controllers"
	"content-planner/internal/generation"
	"content-planner/internal/repository"
	"content-planner/internal/routes"
	"content-planner/internal/services"
	"content-planner/internal/utils"
)

// NewDeps builds the planner services on top of kv.
func NewDeps(ctx context.Context, cfg config.Config, kv repository.KeyValue) (routes.Deps, error) {
	utils.SetExtraBannedWords(cfg.ProfanityWords)

	posts, err := services.NewPostService(ctx, repository.NewPostRepository(kv, cfg.StorageKey))
	if err != nil {
		return routes.Deps{}, err
	}

	hashtags := &generation.HashtagClient{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.GenerationTimeout,
	}
	images := &generation.ImageClient{
		APIKey:  cfg.HuggingFaceAPIKey,
		Model:   cfg.HuggingFaceModel,
		BaseURL: cfg.HuggingFaceBaseURL,
		Timeout: cfg.GenerationTimeout,
	}

	return routes.Deps{
		Posts:      posts,
		Calendar:   services.NewCalendarService(posts),
		Generation: services.NewGenerationService(hashtags, images, generation.NewImageStore(cfg.ImageTTL)),
		Auth: controllers.AuthSettings{
			Secret:       cfg.JWTSecret,
			PasswordHash: cfg.AdminPasswordHash,
			TokenTTL:     cfg.TokenTTL,
		},
	}, nil
}

// NewApp returns the Fiber app with middleware, docs and every route mounted.
func NewApp(cfg config.Config, d routes.Deps) *fiber.App {
	app := fiber.New(controllers.AppConfig())

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + controllers.SessionHeader,
		ExposeHeaders: "Content-Disposition",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.Register(app, d)
	return app
}

// ListenAddr returns the address for app.Listen.
func ListenAddr(cfg config.Config) string {
	if strings.Contains(cfg.Port, ":") {
		return cfg.Port
	}
	return ":" + cfg.Port
}
