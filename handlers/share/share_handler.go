// handlers/share/share_handler.go
package handlers

import (
	"encoding/json"
	"errors"

	"scrollwish.link/configs"
	"scrollwish.link/configs/configslog"
	"scrollwish.link/pkg/keygen"
	"scrollwish.link/pkg/viewer"
	"scrollwish.link/services"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// ShareHandler public paylaşım linki isteklerini yönetir: kart sayfası,
// QR kodu ve alıcı yanıtının kaydı.
type ShareHandler struct {
	cardService services.ICardService
}

// NewShareHandler yeni bir ShareHandler örneği oluşturur.
func NewShareHandler() *ShareHandler {
	return &ShareHandler{cardService: services.NewCardService()}
}

// ShowCard gelen :key parametresine göre kart sayfasını gösterir.
func (h *ShareHandler) ShowCard(c *fiber.Ctx) error {
	key := c.Params("key")
	if len(key) != keygen.ShareKeyLength {
		configslog.SLog.Warnf("Geçersiz formatta paylaşım anahtarı denendi: %s", key)
		return h.renderNotFound(c, "Geçersiz Link")
	}

	view, err := h.cardService.GetCardByKey(c.UserContext(), key)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound), errors.Is(err, services.ErrCardDisabled):
			return h.renderNotFound(c, "Kart Bulunamadı")
		}
		configslog.Log.Error("ShowCard: GetCardByKey error", zap.String("key", key), zap.Error(err))
		return h.renderError(c, "Kart yüklenirken bir sorun oluştu.")
	}

	if view.Locked {
		return c.Render("share_locked", fiber.Map{
			"Title":    "ScrollWish",
			"ShareKey": view.ShareKey,
		})
	}

	// İçerik ve mevcut yanıt sayfaya JSON olarak gömülür; görüntüleyici
	// durumunu istemci tarafı bu veriden kurar.
	stateJSON, err := json.Marshal(view)
	if err != nil {
		configslog.Log.Error("ShowCard: içerik serileştirilemedi", zap.String("key", key), zap.Error(err))
		return h.renderError(c, "Kart yüklenirken bir sorun oluştu.")
	}

	ogTitle := "A card for you"
	if view.Content != nil && view.Content.RecipientName != "" {
		ogTitle = "A card for " + view.Content.RecipientName
	}
	return c.Render("share", fiber.Map{
		"Title":     "ScrollWish",
		"OGTitle":   ogTitle,
		"ShareURL":  configs.AppBaseURL() + "/s/" + view.ShareKey,
		"ShareKey":  view.ShareKey,
		"StateJSON": string(stateJSON),
	})
}

// ShowCardJSON kart durumunu JSON olarak döndürür. Kilitliyken içerik ve
// yanıt gönderilmez; istemci kilit ekranını çizer.
func (h *ShareHandler) ShowCardJSON(c *fiber.Ctx) error {
	key := c.Params("key")
	if len(key) != keygen.ShareKeyLength {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Geçersiz link"})
	}

	view, err := h.cardService.GetCardByKey(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) || errors.Is(err, services.ErrCardDisabled) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kart bulunamadı"})
		}
		configslog.Log.Error("ShowCardJSON: GetCardByKey error", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kart alınamadı"})
	}
	return c.JSON(fiber.Map{"card": view})
}

// ShowQR paylaşım linkinin QR kodunu PNG olarak döndürür.
func (h *ShareHandler) ShowQR(c *fiber.Ctx) error {
	key := c.Params("key")
	if len(key) != keygen.ShareKeyLength {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Geçersiz link"})
	}

	// Kart var mı ve yayında mı kontrolü
	if _, err := h.cardService.GetCardByKey(c.UserContext(), key); err != nil {
		if errors.Is(err, services.ErrCardNotFound) || errors.Is(err, services.ErrCardDisabled) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kart bulunamadı"})
		}
		configslog.Log.Error("ShowQR: GetCardByKey error", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "QR kodu oluşturulamadı"})
	}

	shareURL := configs.AppBaseURL() + "/s/" + key
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		configslog.Log.Error("ShowQR: QR kodlama hatası", zap.String("url", shareURL), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "QR kodu oluşturulamadı"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// SaveResponse alıcının yanıtını kaydeder. Kart başına tek yanıt tutulur,
// tekrarlanan gönderim öncekinin üzerine yazar.
func (h *ShareHandler) SaveResponse(c *fiber.Ctx) error {
	key := c.Params("key")
	if len(key) != keygen.ShareKeyLength {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Geçersiz link"})
	}

	var payload viewer.ResponsePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	saved, err := h.cardService.SaveRecipientResponse(c.UserContext(), key, payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardNotFound), errors.Is(err, services.ErrCardDisabled):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kart bulunamadı"})
		case errors.Is(err, services.ErrCardLocked):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrResponseInvalid):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("SaveResponse error", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Yanıt kaydedilemedi"})
	}
	return c.JSON(fiber.Map{"response": saved})
}

func (h *ShareHandler) renderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": message,
	})
}

func (h *ShareHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": message,
	})
}
