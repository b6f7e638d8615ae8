package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/handler"
	"cjpowerhouse-backend/internal/middleware"
	"cjpowerhouse-backend/internal/model"
	"cjpowerhouse-backend/internal/repository"
)

func SetupTransactionRoutes(app *fiber.App, db *gorm.DB) {
	orderRepo := repository.NewOrderRepository(db)
	hdl := handler.NewTransactionHandler(orderRepo)

	api := app.Group("/api/transactions", middleware.Auth, middleware.Role(model.RoleAdmin, model.RoleCashier))
	api.Get("/", hdl.GetTransactions)
	api.Get("/orders/:id/items", hdl.GetOrderItems)
	api.Get("/orders/:id/stock", hdl.CheckStock)
	api.Post("/orders/:id/cancel", hdl.CancelOrder)
}
