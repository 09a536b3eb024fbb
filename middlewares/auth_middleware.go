// middlewares/auth_middleware.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware oturum açmış kullanıcı gerektiren API rotalarını korur.
// Kullanıcı kimliği router'daki session middleware'i tarafından locals'a
// konur; burada sadece varlığı kontrol edilir.
func AuthMiddleware(c *fiber.Ctx) error {
	if _, ok := c.Locals("userID").(uint); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Giriş yapmanız gerekiyor",
		})
	}
	return c.Next()
}

// AdminMiddleware yönetim rotalarını korur. AuthMiddleware'den sonra
// çalışmalıdır.
func AdminMiddleware(c *fiber.Ctx) error {
	if isAdmin, ok := c.Locals("isAdmin").(bool); !ok || !isAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Bu alan için yetkiniz yok",
		})
	}
	return c.Next()
}
