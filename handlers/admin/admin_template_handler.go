// handlers/admin/admin_template_handler.go
package handlers

import (
	"errors"

	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"
	"scrollwish.link/pkg/queryparams"
	"scrollwish.link/pkg/viewer"
	"scrollwish.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminTemplateHandler yönetim panelinin şablon uçlarını yönetir.
type AdminTemplateHandler struct {
	templateService services.ITemplateService
}

// NewAdminTemplateHandler yeni bir AdminTemplateHandler örneği oluşturur.
func NewAdminTemplateHandler() *AdminTemplateHandler {
	return &AdminTemplateHandler{templateService: services.NewTemplateService()}
}

type templateRequest struct {
	CategoryID      uint               `json:"categoryId"`
	Name            string             `json:"name"`
	Slug            string             `json:"slug"`
	Layout          viewer.Layout      `json:"layout"`
	Theme           viewer.Theme       `json:"theme"`
	PreviewImageURL string             `json:"previewImageUrl"`
	PriceINR        int                `json:"priceInr"`
	IsEnabled       *bool              `json:"isEnabled"`
	DefaultContent  viewer.CardContent `json:"defaultContent"`
}

// ListTemplates tüm şablonları sayfalı listeler (pasifler dahil).
func (h *AdminTemplateHandler) ListTemplates(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz sorgu parametreleri"})
	}
	params.Validate()

	result, err := h.templateService.GetTemplatesPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Admin ListTemplates error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Şablonlar listelenemedi"})
	}
	return c.JSON(result)
}

// CreateTemplate yeni şablon ekler.
func (h *AdminTemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req templateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}
	template := models.Template{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Slug:            req.Slug,
		Layout:          req.Layout,
		Theme:           req.Theme,
		PreviewImageURL: req.PreviewImageURL,
		PriceINR:        req.PriceINR,
		IsEnabled:       enabled,
		DefaultContent:  req.DefaultContent,
	}
	if err := h.templateService.CreateTemplate(c.UserContext(), userID, &template); err != nil {
		switch {
		case errors.Is(err, services.ErrTemplateNameRequired),
			errors.Is(err, services.ErrTemplateInvalidLayout),
			errors.Is(err, services.ErrTemplateSlugTaken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Admin CreateTemplate error", zap.String("slug", req.Slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Şablon oluşturulamadı"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"template": template})
}

// UpdateTemplate mevcut şablonu günceller.
func (h *AdminTemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz şablon kimliği"})
	}

	var req templateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	data := map[string]interface{}{
		"category_id":       req.CategoryID,
		"name":              req.Name,
		"slug":              req.Slug,
		"theme":             req.Theme,
		"preview_image_url": req.PreviewImageURL,
		"price_inr":         req.PriceINR,
		"default_content":   req.DefaultContent,
	}
	if req.IsEnabled != nil {
		data["is_enabled"] = *req.IsEnabled
	}

	if err := h.templateService.UpdateTemplate(c.UserContext(), uint(id), userID, data); err != nil {
		switch {
		case errors.Is(err, services.ErrTemplateNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrTemplateInvalidLayout), errors.Is(err, services.ErrTemplateSlugTaken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Admin UpdateTemplate error", zap.Int("template_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Şablon güncellenemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteTemplate şablonu siler.
func (h *AdminTemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz şablon kimliği"})
	}

	if err := h.templateService.DeleteTemplate(c.UserContext(), uint(id), userID); err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Admin DeleteTemplate error", zap.Int("template_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Şablon silinemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}
