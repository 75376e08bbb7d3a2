package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/dinoxe/internal/config"
	"github.com/example/dinoxe/internal/database"
	"github.com/example/dinoxe/internal/middleware"
	"github.com/example/dinoxe/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "Dinoxe Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.Prometheus())

	routes.Register(app, db, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
