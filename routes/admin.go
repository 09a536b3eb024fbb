// routes/admin.go
package routes

import (
	admin_handlers "scrollwish.link/handlers/admin"
	"scrollwish.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAdminRoutes(app *fiber.App) {
	categoryHandler := admin_handlers.NewAdminCategoryHandler()
	templateHandler := admin_handlers.NewAdminTemplateHandler()
	cardHandler := admin_handlers.NewAdminCardHandler()

	admin := app.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware)
	admin.Use(middlewares.AdminMiddleware)

	admin.Get("/categories", categoryHandler.ListCategories)
	admin.Post("/categories", categoryHandler.CreateCategory)
	admin.Put("/categories/:id", categoryHandler.UpdateCategory)
	admin.Delete("/categories/:id", categoryHandler.DeleteCategory)

	admin.Get("/templates", templateHandler.ListTemplates)
	admin.Post("/templates", templateHandler.CreateTemplate)
	admin.Put("/templates/:id", templateHandler.UpdateTemplate)
	admin.Delete("/templates/:id", templateHandler.DeleteTemplate)

	admin.Get("/cards", cardHandler.ListCards)
	admin.Patch("/cards/:id/status", cardHandler.UpdateCardStatus)
}
