// handlers/admin/admin_category_handler.go
package handlers

import (
	"errors"

	"scrollwish.link/configs/configslog"
	"scrollwish.link/models"
	"scrollwish.link/pkg/queryparams"
	"scrollwish.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminCategoryHandler yönetim panelinin kategori uçlarını yönetir.
type AdminCategoryHandler struct {
	categoryService services.ICategoryService
}

// NewAdminCategoryHandler yeni bir AdminCategoryHandler örneği oluşturur.
func NewAdminCategoryHandler() *AdminCategoryHandler {
	return &AdminCategoryHandler{categoryService: services.NewCategoryService()}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
	IsEnabled   *bool  `json:"isEnabled"`
}

// ListCategories tüm kategorileri sayfalı listeler (pasifler dahil).
func (h *AdminCategoryHandler) ListCategories(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz sorgu parametreleri"})
	}
	params.Validate()

	result, err := h.categoryService.GetCategoriesPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Admin ListCategories error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kategoriler listelenemedi"})
	}
	return c.JSON(result)
}

// CreateCategory yeni kategori ekler.
func (h *AdminCategoryHandler) CreateCategory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}
	category := models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Icon:        req.Icon,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsEnabled:   enabled,
	}
	if err := h.categoryService.CreateCategory(c.UserContext(), userID, &category); err != nil {
		if errors.Is(err, services.ErrCategorySlugRequired) || errors.Is(err, services.ErrCategorySlugTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Admin CreateCategory error", zap.String("slug", req.Slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kategori oluşturulamadı"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"category": category})
}

// UpdateCategory mevcut kategoriyi günceller.
func (h *AdminCategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kategori kimliği"})
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz istek gövdesi"})
	}

	data := map[string]interface{}{
		"name":        req.Name,
		"slug":        req.Slug,
		"icon":        req.Icon,
		"description": req.Description,
		"sort_order":  req.SortOrder,
	}
	if req.IsEnabled != nil {
		data["is_enabled"] = *req.IsEnabled
	}

	if err := h.categoryService.UpdateCategory(c.UserContext(), uint(id), userID, data); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrCategorySlugRequired), errors.Is(err, services.ErrCategorySlugTaken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Admin UpdateCategory error", zap.Int("category_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kategori güncellenemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteCategory kategoriyi siler.
func (h *AdminCategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz kategori kimliği"})
	}

	if err := h.categoryService.DeleteCategory(c.UserContext(), uint(id), userID); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Admin DeleteCategory error", zap.Int("category_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Kategori silinemedi"})
	}
	return c.JSON(fiber.Map{"success": true})
}
