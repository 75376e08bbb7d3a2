package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/example/dinoxe/internal/config"
	"github.com/example/dinoxe/internal/handlers"
	"github.com/example/dinoxe/internal/middleware"
	"github.com/example/dinoxe/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	gate := services.NewAdmissionGate(services.NewOrderStore(db), cfg.OrderCooldown)

	authHandler := handlers.NewAuthHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db)
	orderHandler := handlers.NewOrderHandler(db, gate, telegramService)
	adminHandler := handlers.NewAdminHandler(db, telegramService)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Public catalog
	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/:id", productHandler.GetProduct)
	products.Get("/:id/reviews", productHandler.ListReviews)
	products.Post("/:id/reviews", productHandler.CreateReview)

	// Checkout and tracking
	orders := api.Group("/orders")
	orders.Post("/", orderHandler.CreateOrder)
	orders.Post("/check-cooldown", orderHandler.CheckCooldown)
	orders.Get("/:orderId", orderHandler.GetOrder)

	// Admin back-office
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)

	protected := admin.Group("", middleware.AdminAuth(cfg))
	protected.Get("/stats", adminHandler.DashboardStats)
	protected.Get("/orders", adminHandler.ListAllOrders)
	protected.Get("/orders/recent", adminHandler.RecentOrders)
	protected.Patch("/orders/:id", adminHandler.UpdateOrderStatus)
	protected.Get("/refunds", adminHandler.ListRefunds)
	protected.Patch("/refunds/:id", adminHandler.UpdateRefund)
	protected.Get("/products", productHandler.ListAllProducts)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Patch("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)
}
