// middlewares/request_id_middleware.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware her isteğe benzersiz bir kimlik atar. İstemciden
// gelen kimlik varsa korunur, yoksa üretilir.
func RequestIDMiddleware(c *fiber.Ctx) error {
	requestID := c.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Locals("requestID", requestID)
	c.Set(RequestIDHeader, requestID)
	return c.Next()
}
