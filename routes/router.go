// routes/router.go
package routes

import (
	"scrollwish.link/configs"
	"scrollwish.link/middlewares"
	"scrollwish.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(middlewares.RequestIDMiddleware)
	app.Use(logger.New()) // İstek loglama
	app.Use(initializeSessionAndLocals())

	// --- Rota Grupları ---
	registerAPIRoutes(app)   // /api rotaları
	registerAdminRoutes(app) // /api/admin rotaları
	registerShareRoutes(app) // /s/:key public rotaları

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u locals'a koyar ve varsa
// oturumdaki kullanıcı bilgilerini isteğe taşır.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if isAdmin, admErr := utils.GetIsAdminFromSession(sess); admErr == nil {
			c.Locals("isAdmin", isAdmin)
		}
		if phone, ok := sess.Get("user_phone").(string); ok {
			c.Locals("userPhone", phone)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"})
	}
}
