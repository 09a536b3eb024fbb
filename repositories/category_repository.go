// repositories/category_repository.go
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scrollwish.link/configs/configsdatabase"
	"scrollwish.link/models"
	"scrollwish.link/pkg/queryparams"
)

// ICategoryRepository kategori veritabanı işlemleri için arayüz.
type ICategoryRepository interface {
	GetAll(params queryparams.ListParams) ([]models.Category, int64, error)
	GetAllEnabled() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type CategoryRepository struct {
	base IBaseRepository[models.Category]
	db   *gorm.DB
}

func NewCategoryRepository() ICategoryRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.Category](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "sort_order"})
	return &CategoryRepository{base: base, db: db}
}

func (r *CategoryRepository) GetAll(params queryparams.ListParams) ([]models.Category, int64, error) {
	return r.base.GetAll(params)
}

// GetAllEnabled vitrindeki kategori listesi; sıralama alanına göre döner.
func (r *CategoryRepository) GetAllEnabled() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Where("is_enabled = true").
		Order("sort_order asc, name asc").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	return r.base.GetByID(id)
}

func (r *CategoryRepository) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.base.Create(ctx, category)
}

func (r *CategoryRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	return r.base.Update(ctx, id, data)
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}
