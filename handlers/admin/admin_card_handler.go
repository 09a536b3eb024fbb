// handlers/admin/admin_card_handler.go
package handlers

import (
	"errors"

	"scrollwish.link/configs/configslog"
	"scrollwish.link/pkg/queryparams"
	"scrollwish.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminCardHandler yönetim panelinin kart gözlem uçlarını yönetir.
// Kart içeriği sahibine aittir; panel yalnızca listeler.
type AdminCardHandler struct {
	cardService services.ICardService
}

// NewAdminCardHandler yeni bir AdminCardHandler örneği oluşturur.
func NewAdminCardHandler() *AdminCardHandler {
	return &AdminCardHandler{cardService: services.NewCardService()}
}

type cardStatusRequest struct {
	IsEnabled *bool `json:"isEnabled"`
	IsLocked  *bool `json:"isLocked"`
}

// ListCards tüm kartları sayfalı listeler.
func (h *AdminCardHandler) ListCards(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz sorgu parametreleri"})
	}
	params.Validate()

	result, err := h.cardService.GetAllCardsPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Admin ListCards error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kartlar listelenemedi"})
	}
	return c.JSON(result)
}

// UpdateCardStatus yayın ve kilit bayraklarını değiştirir.
func (h *AdminCardHandler) UpdateCardStatus(c *fiber.Ctx) error {
	adminUserID := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kart kimliği"})
	}

	var req cardStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	err = h.cardService.AdminSetCardStatus(c.UserContext(), uint(id), adminUserID, req.IsEnabled, req.IsLocked)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCardInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Admin UpdateCardStatus error", zap.Int("card_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kart durumu güncellenemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}
