// repositories/template_repository.go
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scrollwish.link/configs/configsdatabase"
	"scrollwish.link/models"
	"scrollwish.link/pkg/queryparams"
)

// ITemplateRepository şablon veritabanı işlemleri için arayüz.
type ITemplateRepository interface {
	GetAll(params queryparams.ListParams) ([]models.Template, int64, error)
	GetEnabledByCategorySlug(slug string) ([]models.Template, error)
	GetAllEnabled() ([]models.Template, error)
	GetByID(id uint) (*models.Template, error)
	FindBySlug(slug string) (*models.Template, error)
	Create(ctx context.Context, template *models.Template) error
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type TemplateRepository struct {
	base IBaseRepository[models.Template]
	db   *gorm.DB
}

func NewTemplateRepository() ITemplateRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.Template](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "price_inr"})
	return &TemplateRepository{base: base, db: db}
}

func (r *TemplateRepository) GetAll(params queryparams.ListParams) ([]models.Template, int64, error) {
	return r.base.GetAll(params)
}

// GetEnabledByCategorySlug kategori slug'ına göre vitrin şablonları.
func (r *TemplateRepository) GetEnabledByCategorySlug(slug string) ([]models.Template, error) {
	var templates []models.Template
	err := r.db.
		Joins("JOIN categories ON categories.id = templates.category_id").
		Where("categories.slug = ? AND templates.is_enabled = true AND categories.is_enabled = true", slug).
		Preload("Category").
		Order("templates.created_at desc").
		Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) GetAllEnabled() ([]models.Template, error) {
	var templates []models.Template
	err := r.db.
		Where("is_enabled = true").
		Preload("Category").
		Order("created_at desc").
		Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) GetByID(id uint) (*models.Template, error) {
	var template models.Template
	err := r.db.Preload("Category").First(&template, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) FindBySlug(slug string) (*models.Template, error) {
	var template models.Template
	err := r.db.Preload("Category").Where("slug = ?", slug).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) Create(ctx context.Context, template *models.Template) error {
	return r.base.Create(ctx, template)
}

func (r *TemplateRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	return r.base.Update(ctx, id, data)
}

func (r *TemplateRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}
