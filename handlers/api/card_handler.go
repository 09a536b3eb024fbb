// handlers/api/card_handler.go
package handlers

import (
	"errors"

	"scrollwish.link/configs/configslog"
	"scrollwish.link/pkg/queryparams"
	"scrollwish.link/pkg/viewer"
	"scrollwish.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CardHandler kart sahibinin kendi kartları üzerindeki işlemlerini yönetir.
type CardHandler struct {
	cardService services.ICardService
}

// NewCardHandler yeni bir CardHandler örneği oluşturur.
func NewCardHandler() *CardHandler {
	return &CardHandler{cardService: services.NewCardService()}
}

type createCardRequest struct {
	TemplateID *uint              `json:"templateId"`
	Content    viewer.CardContent `json:"content"`
}

type updateCardRequest struct {
	Content   viewer.CardContent `json:"content"`
	IsEnabled *bool              `json:"isEnabled"`
}

// CreateCard yeni bir kart oluşturur ve paylaşım anahtarını döndürür.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req createCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	card, err := h.cardService.CreateCard(c.UserContext(), userID, req.TemplateID, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrCardInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("CreateCard error", zap.Uint("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kart oluşturulamadı"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"card": card})
}

// ListCards kullanıcının kartlarını sayfalı listeler.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz sorgu parametreleri"})
	}
	params.Validate()

	result, err := h.cardService.GetCardsForUserPaginated(c.UserContext(), userID, params)
	if err != nil {
		configslog.Log.Error("ListCards error", zap.Uint("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kartlar listelenemedi"})
	}
	return c.JSON(result)
}

// GetCard tek bir kartı sahibine döndürür.
func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kart kimliği"})
	}

	card, err := h.cardService.GetCardByID(c.UserContext(), uint(id), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCardForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetCard error", zap.Int("card_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kart alınamadı"})
	}
	return c.JSON(fiber.Map{"card": card})
}

// UpdateCard kart içeriğini günceller. Düzen (layout) değiştirilemez.
func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kart kimliği"})
	}

	var req updateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}
	isEnabled := true
	if req.IsEnabled != nil {
		isEnabled = *req.IsEnabled
	}

	err = h.cardService.UpdateCardContent(c.UserContext(), uint(id), userID, req.Content, isEnabled)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCardForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCardInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("UpdateCard error", zap.Int("card_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kart güncellenemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteCard kartı siler (soft delete).
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kart kimliği"})
	}

	err = h.cardService.DeleteCard(c.UserContext(), uint(id), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCardForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("DeleteCard error", zap.Int("card_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kart silinemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}
