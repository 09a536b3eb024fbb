// handlers/api/catalog_handler.go
package handlers

import (
	"scrollwish.link/configs/configslog"
	"scrollwish.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler kategori ve şablon kataloğunun public uçlarını yönetir.
type CatalogHandler struct {
	categoryService services.ICategoryService
	templateService services.ITemplateService
}

// NewCatalogHandler yeni bir CatalogHandler örneği oluşturur.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{
		categoryService: services.NewCategoryService(),
		templateService: services.NewTemplateService(),
	}
}

// ListCategories aktif kategorileri sıralı döndürür.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetPublicCategories(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListCategories error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kategoriler alınamadı"})
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// ListTemplates aktif şablonları döndürür. ?categorySlug= ile filtrelenir.
func (h *CatalogHandler) ListTemplates(c *fiber.Ctx) error {
	slug := c.Query("categorySlug")
	templates, err := h.templateService.GetPublicTemplates(c.UserContext(), slug)
	if err != nil {
		configslog.Log.Error("ListTemplates error", zap.String("category_slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Şablonlar alınamadı"})
	}
	return c.JSON(fiber.Map{"templates": templates})
}
