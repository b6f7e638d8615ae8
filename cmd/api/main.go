package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cjpowerhouse-backend/config"
	"cjpowerhouse-backend/internal/repository"
	"cjpowerhouse-backend/internal/routes"
	"cjpowerhouse-backend/internal/service"
	"cjpowerhouse-backend/pkg/mailer"
	"cjpowerhouse-backend/pkg/redis"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not found, using system environment variables.")
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zlog.Sync()

	config.ConnectDB()
	zlog.Info("database connected")

	// Redis is optional: without it the login rate limiter passes through.
	var rdb *redis.Client
	if addr := config.GetEnv("REDIS_ADDR", ""); addr != "" {
		rdb, err = redis.NewClient(addr, config.GetEnv("REDIS_PASSWORD", ""), config.GetEnvAsInt("REDIS_DB", 0), zlog)
		if err != nil {
			zlog.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
			rdb = nil
		}
	}

	mail := mailer.New(
		config.GetEnv("SMTP_HOST", ""),
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASS", ""),
		config.GetEnv("SMTP_FROM", "noreply@cjpowerhouse.local"),
		zlog,
	)

	// The sweeper owns forgotten sessions; handlers never trigger it.
	sweeper := service.NewSweeper(repository.NewStaffLogRepository(config.DB), zlog)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.Run(ctx)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, config.DB, rdb, zlog)
	routes.SetupStaffLogRoutes(app, config.DB, zlog)
	routes.SetupPayRoutes(app, config.DB)
	routes.SetupTransactionRoutes(app, config.DB)
	routes.SetupFeedbackRoutes(app, config.DB)
	routes.SetupRescueRoutes(app, config.DB, mail, zlog)
	routes.SetupReportRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	zlog.Info("server listening", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
