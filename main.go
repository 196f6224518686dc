// @title Content Planner API
// @version 1.0
// @description Schedule social media posts on a monthly calendar and draft hashtags and images for them.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "content-planner/docs"

	"content-planner/bootstrap"
	"content-planner/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.AuthEnabled() {
		log.Printf("env: JWT_SECRET len=%d", len(cfg.JWTSecret))
	} else {
		log.Println("JWT_SECRET not set; planner API is open")
	}

	ctx := context.Background()

	// Storage
	kv, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open store failed: %v", err)
	}
	defer kv.Close()

	deps, err := bootstrap.NewDeps(ctx, cfg, kv)
	if err != nil {
		log.Fatalf("load posts failed: %v", err)
	}
	defer deps.Generation.Close()

	app := bootstrap.NewApp(cfg, deps)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	// RUN SERVER
	if err := app.Listen(bootstrap.ListenAddr(cfg)); err != nil {
		log.Printf("listen: %v", err)
	}
}
