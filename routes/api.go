// routes/api.go
package routes

import (
	api_handlers "scrollwish.link/handlers/api"
	"scrollwish.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAPIRoutes(app *fiber.App) {
	authHandler := api_handlers.NewAuthHandler()
	cardHandler := api_handlers.NewCardHandler()
	catalogHandler := api_handlers.NewCatalogHandler()
	paymentHandler := api_handlers.NewPaymentHandler()

	api := app.Group("/api")

	// Kimlik doğrulama
	auth := api.Group("/auth")
	auth.Post("/send-otp", authHandler.SendOTP)
	auth.Post("/verify-otp", authHandler.VerifyOTP)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", middlewares.AuthMiddleware, authHandler.Me)

	// Public katalog
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/templates", catalogHandler.ListTemplates)

	// Kart sahibi işlemleri
	cards := api.Group("/cards")
	cards.Use(middlewares.AuthMiddleware)
	cards.Get("/", cardHandler.ListCards)
	cards.Post("/", cardHandler.CreateCard)
	cards.Get("/:id", cardHandler.GetCard)
	cards.Put("/:id", cardHandler.UpdateCard)
	cards.Delete("/:id", cardHandler.DeleteCard)

	// Ödeme
	payments := api.Group("/payments")
	payments.Use(middlewares.AuthMiddleware)
	payments.Post("/create-order", paymentHandler.CreateOrder)
	payments.Post("/verify", paymentHandler.VerifyPayment)
}
