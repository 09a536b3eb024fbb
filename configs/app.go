// configs/app.go
package configs

import (
	"os"
	"time"

	"scrollwish.link/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa sessizce devam edilir
// (production ortamında değişkenler dışarıdan verilir).
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, ortam değişkenleri kullanılacak")
	}
}

// SetupApp Fiber uygulamasını template motoru ile birlikte oluşturur.
func SetupApp() *fiber.App {
	engine := html.New("./views", ".html")
	engine.Reload(os.Getenv("ENV") != "production")

	app := fiber.New(fiber.Config{
		AppName:      "ScrollWish",
		Views:        engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	return app
}

// SetupSession cookie tabanlı session store'u hazırlar.
func SetupSession() *session.Store {
	return session.New(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     7 * 24 * time.Hour,
	})
}

// AppBaseURL paylaşım linklerinde kullanılacak taban URL'i döndürür.
func AppBaseURL() string {
	if v := os.Getenv("APP_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:3000"
}
