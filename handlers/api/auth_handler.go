// handlers/api/auth_handler.go
package handlers

import (
	"errors"

	"scrollwish.link/configs/configslog"
	"scrollwish.link/services"
	"scrollwish.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler telefon + OTP tabanlı giriş akışını yönetir.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

type sendOTPRequest struct {
	Phone string `json:"phone"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// SendOTP telefona tek kullanımlık giriş kodu gönderir.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req sendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	if err := h.authService.RequestOTP(c.UserContext(), req.Phone); err != nil {
		if errors.Is(err, services.ErrPhoneRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("SendOTP error", zap.String("phone", req.Phone), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kod gönderilemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// VerifyOTP kodu doğrular ve session açar.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	user, err := h.authService.VerifyOTP(c.UserContext(), req.Phone, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOTPNotFound), errors.Is(err, services.ErrOTPExpired):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kodun süresi dolmuş, yeniden isteyin"})
		case errors.Is(err, services.ErrOTPMismatch):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kod hatalı"})
		case errors.Is(err, services.ErrOTPTooManyTries):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Çok fazla deneme, yeni kod isteyin"})
		case errors.Is(err, services.ErrPhoneRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("VerifyOTP error", zap.String("phone", req.Phone), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Doğrulama sırasında bir sorun oluştu"})
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("VerifyOTP: session başlatılamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Oturum açılamadı"})
	}
	if err := utils.SetUserSession(sess, user.ID, user.Phone, user.IsAdmin); err != nil {
		configslog.Log.Error("VerifyOTP: session kaydedilemedi", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Oturum açılamadı"})
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":      user.ID,
			"phone":   user.Phone,
			"isAdmin": user.IsAdmin,
		},
	})
}

// Me oturumdaki kullanıcıyı döndürür.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	phone, _ := c.Locals("userPhone").(string)
	isAdmin, _ := c.Locals("isAdmin").(bool)
	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":      userID,
			"phone":   phone,
			"isAdmin": isAdmin,
		},
	})
}

// Logout session'ı sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if err := utils.DestroySession(sess); err != nil {
			configslog.Log.Warn("Logout: session temizlenemedi", zap.Error(err))
		}
	}
	return c.JSON(fiber.Map{"success": true})
}
