package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mfalcone/okrdeck-api/internal/config"
	"github.com/mfalcone/okrdeck-api/internal/handlers"
	"github.com/mfalcone/okrdeck-api/internal/routes"
	"github.com/mfalcone/okrdeck-api/internal/services"
	"github.com/mfalcone/okrdeck-api/internal/store"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	st, err := store.Open(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("Failed to open store", zap.Error(err))
	}
	if err := st.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Store ready", zap.String("database_url", cfg.DatabaseURL))

	okrs := services.NewOKRService(st, log)
	h := handlers.New(st, okrs)

	app := fiber.New(fiber.Config{AppName: "okrdeck-api"})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	routes.Setup(app, h)

	log.Info("Listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
