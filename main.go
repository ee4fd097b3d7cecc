package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"

	"arc-portal/app/config"
	"arc-portal/app/database"
	"arc-portal/app/registry"
	"arc-portal/app/routes/assistant"
	"arc-portal/app/routes/auth"
	"arc-portal/app/routes/registryadmin"
	"arc-portal/app/routes/students"
	"arc-portal/app/services"
)

func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	cfg := config.Load()

	if err := registry.LoadSpellings(cfg.SpellingsFile); err != nil {
		log.Fatalf("Failed to load registry spellings: %v", err)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	notifications, err := database.NewNotificationStore(bootCtx, db, cfg.NotificationTable)
	bootCancel()
	if err != nil {
		log.Fatalf("Failed to resolve notification table: %v", err)
	}

	sessions := auth.NewSessionStore(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.DatabaseURL, cfg.SessionTTL)
	profiles := database.NewProfileStore(db, cfg.ProfileTable)
	studentStore := database.NewStudentStore(db)
	aiAssistant := services.NewAssistant(cfg.AssistantURL, cfg.AssistantKey, cfg.OutboundTimeout)

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          apiErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(compress.New())
	app.Use(etag.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000,http://localhost:5173",
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-Token",
	}))
	app.Use(logger.New())

	// Request-ID plus a timeout guard on each request's outbound work.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)

		ctx, cancel := context.WithTimeout(c.Context(), cfg.OutboundTimeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	authHandler := auth.NewHandler(db, profiles, sessions, cfg.JWTSecret, cfg.SessionTTL)
	authHandler.SetupRoutes(app)
	students.NewHandler(studentStore).SetupRoutes(app, authHandler)
	registryadmin.NewHandler(db, notifications).SetupRoutes(app, authHandler)
	assistant.NewHandler(aiAssistant).SetupRoutes(app, authHandler)

	go func() {
		log.Printf("A.R.C. Portal listening on %s", cfg.Addr)
		if err := app.Listen(cfg.Addr); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
