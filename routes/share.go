// routes/share.go
package routes

import (
	share_handlers "scrollwish.link/handlers/share"

	"github.com/gofiber/fiber/v2"
)

func registerShareRoutes(app *fiber.App) {
	shareHandler := share_handlers.NewShareHandler()

	share := app.Group("/s")
	share.Get("/:key", shareHandler.ShowCard)
	share.Get("/:key/qr", shareHandler.ShowQR)
	share.Post("/:key/respond", shareHandler.SaveResponse)

	// JSON istemcileri için aynı kart görünümü
	app.Get("/api/share/:key", shareHandler.ShowCardJSON)
}
