package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/handler"
	"cjpowerhouse-backend/internal/middleware"
	"cjpowerhouse-backend/internal/repository"
)

func SetupFeedbackRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewFeedbackRepository(db)
	hdl := handler.NewFeedbackHandler(repo)

	api := app.Group("/api/feedback", middleware.Auth)
	api.Post("/react", hdl.React)
}
