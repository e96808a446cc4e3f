package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/example/winehouse/internal/config"
	"github.com/example/winehouse/internal/database"
	"github.com/example/winehouse/internal/routes"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL, cfg.DataDir)

	if err := database.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	engine := html.New("./web/views", ".html")

	app := fiber.New(fiber.Config{
		AppName: "Wine House",
		Views:   engine,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg)

	log.Info().Str("port", cfg.AppPort).Msg("starting server")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal().Err(err).Msg("fiber.Listen error")
	}
}
