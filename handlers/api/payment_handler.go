// handlers/api/payment_handler.go
package handlers

import (
	"errors"

	"scrollwish.link/configs/configslog"
	"scrollwish.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PaymentHandler premium kart kilidi için ödeme uçlarını yönetir.
type PaymentHandler struct {
	paymentService services.IPaymentService
}

// NewPaymentHandler yeni bir PaymentHandler örneği oluşturur.
func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{paymentService: services.NewPaymentService()}
}

type createOrderRequest struct {
	CardID uint `json:"cardId"`
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpayOrderId"`
	PaymentID string `json:"razorpayPaymentId"`
	Signature string `json:"razorpaySignature"`
}

// CreateOrder kilitli kart için ödeme siparişi açar.
func (h *PaymentHandler) CreateOrder(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil || req.CardID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	order, err := h.paymentService.CreateOrder(c.UserContext(), userID, req.CardID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCardForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrPaymentCardNotLocked),
			errors.Is(err, services.ErrPaymentNoPriceOnCard):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrPaymentNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("CreateOrder error", zap.Uint("card_id", req.CardID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Sipariş oluşturulamadı"})
	}
	return c.JSON(fiber.Map{"order": order})
}

// VerifyPayment checkout dönüşündeki imzayı doğrular ve kartı açar.
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil || req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	err := h.paymentService.VerifyPayment(c.UserContext(), userID, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentBadSignature):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrPaymentOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrPaymentForbiddenOrder):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrPaymentAlreadyPaid):
			// Tekrarlanan doğrulama istekleri zararsızdır.
			return c.JSON(fiber.Map{"success": true})
		case errors.Is(err, services.ErrPaymentNotConfigured):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("VerifyPayment error", zap.String("order_id", req.OrderID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Ödeme doğrulanamadı"})
	}
	return c.JSON(fiber.Map{"success": true})
}
